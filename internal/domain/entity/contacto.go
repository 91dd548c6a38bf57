package entity

import "time"

// Contacto representa un prospecto o contacto comercial de un cliente.
type Contacto struct {
	ID                string
	ClienteID         string
	Nombre            string
	Apellido          string
	Email             string
	Telefono          string
	Asesor            string
	Estado            string
	Origen            string // formulario, importación, referido, ...
	CamposAdicionales map[string]any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
