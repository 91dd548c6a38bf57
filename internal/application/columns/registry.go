package columns

import (
	"context"
	"strings"

	"github.com/ettle/strcase"

	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/pkg/logger"
)

// Registry combina columnas base y campos adicionales del cliente.
type Registry struct {
	source FieldSource
	log    *logger.Logger
}

// NewRegistry construye el registro. log nil descarta los avisos.
func NewRegistry(source FieldSource, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{source: source, log: log}
}

// Catalog devuelve el catálogo de la tabla para el cliente.
// Si el origen falla se registra un aviso y el catálogo queda solo con columnas base;
// fetched indica si las definiciones se obtuvieron.
func (r *Registry) Catalog(ctx context.Context, f table.Feature, clienteID string) (c *table.Catalog, fetched bool) {
	fields, err := r.source.FetchFields(ctx, clienteID, f.Entidad)
	if err != nil {
		r.log.Warn().Err(err).
			Str("cliente_id", clienteID).
			Str("feature", f.Name).
			Msg("no se pudieron obtener los campos adicionales; se usan solo columnas base")
		return table.NewCatalog(f.BaseColumns, nil, f.ReservedNames()), false
	}
	return table.NewCatalog(f.BaseColumns, CustomColumns(fields), f.ReservedNames()), true
}

// CustomColumns convierte definiciones en columnas adicionales.
// Definiciones sin id se descartan; sin etiqueta se deriva del id.
func CustomColumns(fields []FieldDefinition) []table.Column {
	out := make([]table.Column, 0, len(fields))
	for _, f := range fields {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			continue
		}
		label := strings.TrimSpace(f.Label)
		if label == "" {
			label = strcase.ToCase(id, strcase.TitleCase, ' ')
		}
		out = append(out, table.CustomColumn(id, label, columnType(f.Type)))
	}
	return out
}

func columnType(tipo string) string {
	switch strings.ToLower(tipo) {
	case entity.CampoNumero:
		return table.TypeNumber
	case entity.CampoFecha:
		return table.TypeDate
	default:
		return table.TypeText
	}
}
