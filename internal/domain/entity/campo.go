package entity

import "time"

// Entidades que admiten campos adicionales.
const (
	EntidadVentas    = "ventas"
	EntidadContactos = "contactos"
)

// Tipos de campo adicional.
const (
	CampoTexto     = "text"
	CampoNumero    = "number"
	CampoFecha     = "date"
	CampoSeleccion = "select"
	CampoBooleano  = "boolean"
)

// CampoDefinicion describe un campo adicional definido por un cliente.
// FieldID es el identificador estable usado como llave en campos_adicionales.
type CampoDefinicion struct {
	ID        string
	ClienteID string
	Entidad   string // ventas | contactos
	FieldID   string
	Label     string
	Tipo      string
	Opciones  []string
	CreatedAt time.Time
}
