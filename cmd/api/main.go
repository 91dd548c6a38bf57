package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/ventas-admin-api/internal/application/analytics"
	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/catalog"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/encoder"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/fields"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/ventas-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ventas-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-admin-api/pkg/config"
	"github.com/jhoicas/ventas-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	features, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de columnas")
	}

	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	contactoRepo := postgres.NewContactoRepository(pool)
	campoRepo := postgres.NewCampoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Origen de campos adicionales: servicio externo o tabla cliente_campos
	var fieldSource columns.FieldSource = columns.NewRepositoryFieldSource(campoRepo)
	if cfg.Fields.Remote() {
		remote, err := fields.NewHTTPClient(fields.HTTPConfig{
			BaseURL: cfg.Fields.BaseURL,
			APIKey:  cfg.Fields.APIKey,
			Timeout: cfg.Fields.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de campos")
		}
		fieldSource = remote
		log.Info().Str("base_url", cfg.Fields.BaseURL).Msg("campos adicionales desde servicio externo")
	}

	var prefRepo repository.PreferenceRepository = postgres.NewPreferenceRepository(pool)
	if cfg.Preferences.Driver == "memory" {
		prefRepo = memory.NewPreferenceRepository()
	}
	prefStore, err := columns.NewPreferenceStore(prefRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("preferencias de columnas")
	}

	var reportStorage export.ReportStorage
	switch cfg.Export.Storage {
	case "s3":
		reportStorage, err = storage.NewS3Storage(ctx, storage.S3Config{
			Bucket: cfg.Export.S3Bucket,
			Region: cfg.Export.S3Region,
			Prefix: cfg.Export.S3Prefix,
		})
	default:
		reportStorage, err = storage.NewLocalStorage(cfg.Export.Dir)
	}
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Export.Storage).Msg("almacenamiento de reportes")
	}

	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	tableUC := usecase.NewTableUseCase(
		features,
		columns.NewRegistry(fieldSource, log),
		prefStore,
		clienteRepo,
		map[string]usecase.RowSource{
			entity.EntidadVentas:    usecase.NewVentaRows(ventaRepo),
			entity.EntidadContactos: usecase.NewContactoRows(contactoRepo),
		},
		log,
	)
	xlsx := encoder.XLSX{}
	exportUC := export.NewExportUseCase(tableUC, encoder.CSV{}, encoder.HTMLXLS{}, xlsx, infrapdf.NewMarotoTableEncoder())
	reportUC := export.NewReportUseCase(tableUC, xlsx, reportStorage, cfg.HTTP.PublicAPIBase)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:   clienteUC,
		TableUC:     tableUC,
		VentaUC:     usecase.NewVentaUseCase(ventaRepo),
		ContactoUC:  usecase.NewContactoUseCase(contactoRepo),
		CampoUC:     usecase.NewCampoUseCase(campoRepo, features),
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo),
		ExportUC:    exportUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
