package repository

import (
	"context"

	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

// CampoRepository define el puerto de persistencia de las definiciones de campos adicionales.
type CampoRepository interface {
	Create(ctx context.Context, campo *entity.CampoDefinicion) error
	GetByID(ctx context.Context, clienteID, id string) (*entity.CampoDefinicion, error)
	// ListByCliente filtra por entidad; entidad vacía devuelve todas.
	ListByCliente(ctx context.Context, clienteID, entidad string) ([]*entity.CampoDefinicion, error)
	Delete(ctx context.Context, clienteID, id string) error
}
