package dto

import "time"

// ClienteResponse salida de cliente (tenant).
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// ClienteListResponse listado paginado de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateClienteRequest entrada para registrar un cliente.
type CreateClienteRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}
