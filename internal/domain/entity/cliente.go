package entity

import "time"

// Estados de Cliente.
const (
	ClienteActivo     = "active"
	ClienteSuspendido = "suspended"
	ClienteInactivo   = "inactive"
)

// Cliente representa una cuenta de negocio (tenant), ej. una universidad.
// Sus ventas, contactos y campos adicionales están aislados de los demás clientes.
type Cliente struct {
	ID        string
	Nombre    string
	Estado    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activo indica si el cliente puede operar.
func (c *Cliente) Activo() bool {
	return c != nil && c.Estado == ClienteActivo
}
