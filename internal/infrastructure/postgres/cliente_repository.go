package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Estado, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `SELECT id, nombre, estado, created_at, updated_at FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre, &c.Estado, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes por nombre con paginación.
func (r *ClienteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, estado, created_at, updated_at
		FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
