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

var _ repository.ContactoRepository = (*ContactoRepo)(nil)

const contactoColumns = `id, cliente_id, nombre, apellido, email, telefono, asesor, estado, origen,
	campos_adicionales, created_at, updated_at`

// ContactoRepo implementación de ContactoRepository.
type ContactoRepo struct {
	q Querier
}

// NewContactoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactoRepository(q Querier) *ContactoRepo {
	return &ContactoRepo{q: q}
}

// Create persiste un contacto.
func (r *ContactoRepo) Create(ctx context.Context, c *entity.Contacto) error {
	extra, err := marshalExtra(c.CamposAdicionales)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO contactos (` + contactoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.ClienteID, c.Nombre, c.Apellido, c.Email, c.Telefono, c.Asesor, c.Estado, c.Origen,
		extra, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto del cliente; nil, nil si no existe.
func (r *ContactoRepo) GetByID(ctx context.Context, clienteID, id string) (*entity.Contacto, error) {
	query := `SELECT ` + contactoColumns + ` FROM contactos WHERE cliente_id = $1 AND id = $2`
	c, err := scanContacto(r.q.QueryRow(ctx, query, clienteID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacto: %w", err)
	}
	return c, nil
}

// ListByCliente lista los contactos del cliente, más recientes primero.
func (r *ContactoRepo) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Contacto, error) {
	query := `SELECT ` + contactoColumns + ` FROM contactos WHERE cliente_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contacto
	for rows.Next() {
		c, err := scanContacto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un contacto del cliente.
func (r *ContactoRepo) Delete(ctx context.Context, clienteID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM contactos WHERE cliente_id = $1 AND id = $2`, clienteID, id)
	if err != nil {
		return fmt.Errorf("delete contacto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContacto(row pgx.Row) (*entity.Contacto, error) {
	var c entity.Contacto
	var extra []byte
	if err := row.Scan(
		&c.ID, &c.ClienteID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.Asesor, &c.Estado, &c.Origen,
		&extra, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m, err := unmarshalExtra(extra)
	if err != nil {
		return nil, err
	}
	c.CamposAdicionales = m
	return &c, nil
}
