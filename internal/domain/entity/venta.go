package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa una venta registrada para un cliente.
// CamposAdicionales guarda los valores de los campos definidos por el cliente (JSONB).
type Venta struct {
	ID                string
	ClienteID         string
	Nombre            string
	Apellido          string
	Email             string
	Telefono          string
	Asesor            string
	Programa          string
	FechaVenta        time.Time
	Monto             decimal.Decimal
	Estado            string
	CamposAdicionales map[string]any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
