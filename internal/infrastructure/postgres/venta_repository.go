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

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, cliente_id, nombre, apellido, email, telefono, asesor, programa,
	fecha_venta, monto, estado, campos_adicionales, created_at, updated_at`

// VentaRepo implementación de VentaRepository.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste una venta. monto se guarda como NUMERIC (codec shopspring/decimal).
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) error {
	extra, err := marshalExtra(v.CamposAdicionales)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ventas (` + ventaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(ctx, query,
		v.ID, v.ClienteID, v.Nombre, v.Apellido, v.Email, v.Telefono, v.Asesor, v.Programa,
		v.FechaVenta, v.Monto, v.Estado, extra, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta del cliente; nil, nil si no existe.
func (r *VentaRepo) GetByID(ctx context.Context, clienteID, id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE cliente_id = $1 AND id = $2`
	v, err := scanVenta(r.q.QueryRow(ctx, query, clienteID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// ListByCliente lista todas las ventas del cliente, más recientes primero.
func (r *VentaRepo) ListByCliente(ctx context.Context, clienteID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE cliente_id = $1 ORDER BY fecha_venta DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina una venta del cliente. domain.ErrNotFound si no existía.
func (r *VentaRepo) Delete(ctx context.Context, clienteID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE cliente_id = $1 AND id = $2`, clienteID, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var extra []byte
	if err := row.Scan(
		&v.ID, &v.ClienteID, &v.Nombre, &v.Apellido, &v.Email, &v.Telefono, &v.Asesor, &v.Programa,
		&v.FechaVenta, &v.Monto, &v.Estado, &extra, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m, err := unmarshalExtra(extra)
	if err != nil {
		return nil, err
	}
	v.CamposAdicionales = m
	return &v, nil
}
