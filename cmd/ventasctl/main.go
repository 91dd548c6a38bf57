package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/catalog"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/fields"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/reports"
	"github.com/jhoicas/ventas-admin-api/pkg/config"
	"github.com/jhoicas/ventas-admin-api/pkg/jwt"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ventasctl",
	Short: "Herramientas de administración de ventas-admin",
	Long:  `Utilidades de línea de comandos: tokens de desarrollo, vista previa de columnas y reportes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		return err
	},
}

var (
	tokenUser    string
	tokenCliente string
	tokenRole    string
	tokenExp     int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emitir un JWT de desarrollo",
	RunE: func(cmd *cobra.Command, args []string) error {
		exp := tokenExp
		if exp <= 0 {
			exp = cfg.JWT.Expiration
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, jwt.Identity{
			UserID:    tokenUser,
			ClienteID: tokenCliente,
			Role:      tokenRole,
		}, cfg.JWT.Issuer, exp)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

var (
	camposCliente string
	camposEntidad string
	camposBaseURL string
)

var camposCmd = &cobra.Command{
	Use:   "campos",
	Short: "Consultar campos adicionales y mostrar el catálogo de columnas resultante",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := camposBaseURL
		if base == "" {
			base = cfg.Fields.BaseURL
		}
		client, err := fields.NewHTTPClient(fields.HTTPConfig{
			BaseURL: base,
			APIKey:  cfg.Fields.APIKey,
			Timeout: cfg.Fields.Timeout,
		})
		if err != nil {
			return err
		}
		feature, err := catalog.MustDefault().Get(camposEntidad)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Fields.Timeout+5*time.Second)
		defer cancel()
		defs, err := client.FetchFields(ctx, camposCliente, feature.Entidad)
		if err != nil {
			return err
		}
		cat := table.NewCatalog(feature.BaseColumns, columns.CustomColumns(defs), feature.ReservedNames())
		defaults := table.DefaultPreferences(cat, feature.DefaultVisible)
		visible := make(map[string]bool, len(defaults.Visible))
		for _, id := range defaults.Visible {
			visible[id] = true
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tETIQUETA\tTIPO\tADICIONAL\tVISIBLE")
		for _, c := range cat.Columns() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\n", c.ID, c.Label, c.Type, c.IsCustom, visible[c.ID])
		}
		return w.Flush()
	},
}

var (
	reporteCliente string
	reporteTabla   string
	reporteToken   string
	reporteAPI     string
	reporteOut     string
)

var reporteCmd = &cobra.Command{
	Use:   "reporte",
	Short: "Generar el reporte completo en el servidor y obtener el enlace de descarga",
	RunE: func(cmd *cobra.Command, args []string) error {
		api := reporteAPI
		if api == "" {
			api = cfg.HTTP.PublicAPIBase
		}
		client, err := reports.New(reports.Config{APIBase: api, Token: reporteToken})
		if err != nil {
			return err
		}
		rep, err := client.Request(cmd.Context(), reporteCliente, reporteTabla)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rep.URL)
		if reporteOut == "" {
			return nil
		}
		f, err := os.Create(reporteOut)
		if err != nil {
			return err
		}
		defer f.Close()
		n, err := client.Download(cmd.Context(), rep, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d bytes escritos en %s\n", n, reporteOut)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "dev-user", "user_id del token")
	tokenCmd.Flags().StringVar(&tokenCliente, "cliente", "", "cliente_id del token (vacío para usuarios de plataforma)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "admin | asesor | lectura")
	tokenCmd.Flags().IntVar(&tokenExp, "exp", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	rootCmd.AddCommand(tokenCmd)

	camposCmd.Flags().StringVar(&camposCliente, "cliente", "", "ID del cliente")
	camposCmd.Flags().StringVar(&camposEntidad, "entidad", "ventas", "ventas | contactos")
	camposCmd.Flags().StringVar(&camposBaseURL, "base-url", "", "URL del servicio de campos (por defecto FIELDS_BASE_URL)")
	_ = camposCmd.MarkFlagRequired("cliente")
	rootCmd.AddCommand(camposCmd)

	reporteCmd.Flags().StringVar(&reporteCliente, "cliente", "", "ID del cliente")
	reporteCmd.Flags().StringVar(&reporteTabla, "tabla", "ventas", "ventas | contactos")
	reporteCmd.Flags().StringVar(&reporteToken, "token", os.Getenv("VENTAS_TOKEN"), "JWT (por defecto $VENTAS_TOKEN)")
	reporteCmd.Flags().StringVar(&reporteAPI, "api", "", "URL pública de la API (por defecto PUBLIC_API_BASE)")
	reporteCmd.Flags().StringVarP(&reporteOut, "out", "o", "", "descargar el archivo en esta ruta")
	_ = reporteCmd.MarkFlagRequired("cliente")
	rootCmd.AddCommand(reporteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
