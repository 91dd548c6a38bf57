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

var _ repository.CampoRepository = (*CampoRepo)(nil)

// CampoRepo definiciones de campos adicionales (tabla cliente_campos).
type CampoRepo struct {
	q Querier
}

// NewCampoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampoRepository(q Querier) *CampoRepo {
	return &CampoRepo{q: q}
}

// Create persiste una definición. (cliente_id, entidad, field_id) es único.
func (r *CampoRepo) Create(ctx context.Context, c *entity.CampoDefinicion) error {
	query := `
		INSERT INTO cliente_campos (id, cliente_id, entidad, field_id, label, tipo, opciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	opciones := c.Opciones
	if opciones == nil {
		opciones = []string{}
	}
	_, err := r.q.Exec(ctx, query, c.ID, c.ClienteID, c.Entidad, c.FieldID, c.Label, c.Tipo, opciones, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert campo: %w", err)
	}
	return nil
}

// GetByID obtiene una definición del cliente; nil, nil si no existe.
func (r *CampoRepo) GetByID(ctx context.Context, clienteID, id string) (*entity.CampoDefinicion, error) {
	query := `
		SELECT id, cliente_id, entidad, field_id, label, tipo, opciones, created_at
		FROM cliente_campos WHERE cliente_id = $1 AND id = $2`
	var c entity.CampoDefinicion
	err := r.q.QueryRow(ctx, query, clienteID, id).Scan(
		&c.ID, &c.ClienteID, &c.Entidad, &c.FieldID, &c.Label, &c.Tipo, &c.Opciones, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campo: %w", err)
	}
	return &c, nil
}

// ListByCliente lista las definiciones en orden de creación. entidad vacía no filtra.
func (r *CampoRepo) ListByCliente(ctx context.Context, clienteID, entidad string) ([]*entity.CampoDefinicion, error) {
	query := `
		SELECT id, cliente_id, entidad, field_id, label, tipo, opciones, created_at
		FROM cliente_campos
		WHERE cliente_id = $1 AND ($2 = '' OR entidad = $2)
		ORDER BY created_at, field_id`
	rows, err := r.q.Query(ctx, query, clienteID, entidad)
	if err != nil {
		return nil, fmt.Errorf("list campos: %w", err)
	}
	defer rows.Close()
	var list []*entity.CampoDefinicion
	for rows.Next() {
		var c entity.CampoDefinicion
		if err := rows.Scan(&c.ID, &c.ClienteID, &c.Entidad, &c.FieldID, &c.Label, &c.Tipo, &c.Opciones, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una definición. Los valores ya guardados en campos_adicionales no se tocan.
func (r *CampoRepo) Delete(ctx context.Context, clienteID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cliente_campos WHERE cliente_id = $1 AND id = $2`, clienteID, id)
	if err != nil {
		return fmt.Errorf("delete campo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
