package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVentaRequest entrada para registrar una venta.
type CreateVentaRequest struct {
	Nombre            string          `json:"nombre" validate:"required"`
	Apellido          string          `json:"apellido"`
	Email             string          `json:"email"`
	Telefono          string          `json:"telefono"`
	Asesor            string          `json:"asesor"`
	Programa          string          `json:"programa"`
	FechaVenta        string          `json:"fecha_venta"` // YYYY-MM-DD; vacío = hoy
	Monto             decimal.Decimal `json:"monto"`
	Estado            string          `json:"estado"`
	CamposAdicionales map[string]any  `json:"campos_adicionales"`
}

// VentaResponse salida de venta.
type VentaResponse struct {
	ID                string          `json:"id"`
	ClienteID         string          `json:"cliente_id"`
	Nombre            string          `json:"nombre"`
	Apellido          string          `json:"apellido"`
	Email             string          `json:"email"`
	Telefono          string          `json:"telefono"`
	Asesor            string          `json:"asesor"`
	Programa          string          `json:"programa"`
	FechaVenta        time.Time       `json:"fecha_venta"`
	Monto             decimal.Decimal `json:"monto"`
	Estado            string          `json:"estado"`
	CamposAdicionales map[string]any  `json:"campos_adicionales"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CreateContactoRequest entrada para registrar un contacto.
type CreateContactoRequest struct {
	Nombre            string         `json:"nombre" validate:"required"`
	Apellido          string         `json:"apellido"`
	Email             string         `json:"email"`
	Telefono          string         `json:"telefono"`
	Asesor            string         `json:"asesor"`
	Estado            string         `json:"estado"`
	Origen            string         `json:"origen"`
	CamposAdicionales map[string]any `json:"campos_adicionales"`
}

// ContactoResponse salida de contacto.
type ContactoResponse struct {
	ID                string         `json:"id"`
	ClienteID         string         `json:"cliente_id"`
	Nombre            string         `json:"nombre"`
	Apellido          string         `json:"apellido"`
	Email             string         `json:"email"`
	Telefono          string         `json:"telefono"`
	Asesor            string         `json:"asesor"`
	Estado            string         `json:"estado"`
	Origen            string         `json:"origen"`
	CamposAdicionales map[string]any `json:"campos_adicionales"`
	CreatedAt         time.Time      `json:"created_at"`
}
