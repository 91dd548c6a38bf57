// Package columns arma el catálogo de columnas de cada tabla (base + campos
// adicionales del cliente) y guarda las preferencias de visibilidad y orden.
package columns

import (
	"context"

	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// FieldDefinition definición de un campo adicional tal como llega del origen.
type FieldDefinition struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// FieldSource origen de las definiciones de campos adicionales de un cliente.
// Implementaciones: PostgreSQL (cliente_campos) y servicio HTTP externo.
type FieldSource interface {
	FetchFields(ctx context.Context, clienteID, entidad string) ([]FieldDefinition, error)
}

// FeatureCatalog resuelve la configuración de una tabla por nombre.
type FeatureCatalog interface {
	Get(name string) (table.Feature, error)
}
