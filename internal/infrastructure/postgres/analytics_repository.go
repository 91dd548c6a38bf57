package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen de ventas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetVentasMetrics cantidad y monto de ventas en [start, end).
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetVentasMetrics(
	ctx context.Context,
	clienteID string,
	start, end time.Time,
) (int, decimal.Decimal, error) {
	const query = `
	SELECT
	    COUNT(*)                  AS ventas,
	    COALESCE(SUM(v.monto), 0) AS total
	FROM ventas v
	WHERE v.cliente_id = $1
	  AND v.fecha_venta >= $2
	  AND v.fecha_venta <  $3`

	var count int
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, clienteID, start, end).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("métricas de ventas: %w", err)
	}
	return count, total, nil
}

// GetTopAsesores ranking de asesores por monto vendido en [start, end).
func (r *AnalyticsRepo) GetTopAsesores(
	ctx context.Context,
	clienteID string,
	start, end time.Time,
	limit int,
) ([]repository.AsesorResult, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(v.asesor, ''), 'Sin asesor') AS asesor,
	    COUNT(*)                                     AS ventas,
	    COALESCE(SUM(v.monto), 0)                    AS monto
	FROM ventas v
	WHERE v.cliente_id = $1
	  AND v.fecha_venta >= $2
	  AND v.fecha_venta <  $3
	GROUP BY 1
	ORDER BY monto DESC, asesor
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, clienteID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top asesores: %w", err)
	}
	defer rows.Close()

	var out []repository.AsesorResult
	for rows.Next() {
		var a repository.AsesorResult
		if err := rows.Scan(&a.Asesor, &a.Ventas, &a.Monto); err != nil {
			return nil, fmt.Errorf("scan asesor: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
