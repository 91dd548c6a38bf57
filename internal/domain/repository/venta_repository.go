package repository

import (
	"context"

	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta.
// Todas las operaciones quedan acotadas al cliente.
type VentaRepository interface {
	Create(ctx context.Context, venta *entity.Venta) error
	GetByID(ctx context.Context, clienteID, id string) (*entity.Venta, error)
	// ListByCliente devuelve todas las ventas del cliente ordenadas por fecha descendente.
	ListByCliente(ctx context.Context, clienteID string) ([]*entity.Venta, error)
	Delete(ctx context.Context, clienteID, id string) error
}

// ContactoRepository define el puerto de persistencia para Contacto.
type ContactoRepository interface {
	Create(ctx context.Context, contacto *entity.Contacto) error
	GetByID(ctx context.Context, clienteID, id string) (*entity.Contacto, error)
	ListByCliente(ctx context.Context, clienteID string) ([]*entity.Contacto, error)
	Delete(ctx context.Context, clienteID, id string) error
}
