package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AsesorResult resultado crudo del ranking de asesores.
type AsesorResult struct {
	Asesor string
	Ventas int
	Monto  decimal.Decimal
}

// AnalyticsRepository consultas de lectura para el resumen del dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetVentasMetrics devuelve cantidad y monto total de ventas del cliente en [start, end).
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetVentasMetrics(
		ctx context.Context,
		clienteID string,
		start, end time.Time,
	) (count int, total decimal.Decimal, err error)

	// GetTopAsesores devuelve los `limit` asesores con mayor monto vendido en el período.
	GetTopAsesores(
		ctx context.Context,
		clienteID string,
		start, end time.Time,
		limit int,
	) ([]AsesorResult, error)
}
