package dto

import "github.com/shopspring/decimal"

// VentasResumenDTO respuesta de GET /api/clientes/:clienteId/dashboard/resumen.
// KPIs del día y del mes en curso, más el Top-5 de asesores del mes.
type VentasResumenDTO struct {
	Hoy         PeriodoDTO  `json:"hoy"`
	Mes         PeriodoDTO  `json:"mes"`
	TopAsesores []AsesorDTO `json:"top_asesores"`
	DateLabel   string      `json:"date_label"` // ej: "Febrero 2026"
}

// PeriodoDTO cantidad y monto vendidos en un período.
type PeriodoDTO struct {
	Ventas int             `json:"ventas"`
	Monto  decimal.Decimal `json:"monto"`
}

// AsesorDTO resumen de un asesor para el widget del dashboard.
type AsesorDTO struct {
	Asesor string          `json:"asesor"`
	Ventas int             `json:"ventas"`
	Monto  decimal.Decimal `json:"monto"`
}
