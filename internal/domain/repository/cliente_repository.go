package repository

import (
	"context"

	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (tenant).
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	// GetByID devuelve nil, nil si el cliente no existe.
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
}
