// Package analytics contiene los casos de uso del resumen de ventas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

const dashboardTopAsesores = 5 // número de asesores en el widget del dashboard

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetResumen construye el VentasResumenDTO del cliente.
//
// Tres llamadas en paralelo:
//  1. GetVentasMetrics(hoy)          → Hoy
//  2. GetVentasMetrics(mes)          → Mes
//  3. GetTopAsesores(mes, top 5)     → TopAsesores
func (uc *DashboardUseCase) GetResumen(ctx context.Context, clienteID string) (*dto.VentasResumenDTO, error) {
	now := uc.now()

	// Hoy: [00:00, mañana 00:00)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	// Mes en curso: [día 1, mañana 00:00)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type metricsResult struct {
		count int
		total decimal.Decimal
		err   error
	}
	type asesoresResult struct {
		list []repository.AsesorResult
		err  error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	asesoresCh := make(chan asesoresResult, 1)

	go func() {
		n, total, err := uc.analyticsRepo.GetVentasMetrics(ctx, clienteID, todayStart, todayEnd)
		todayCh <- metricsResult{n, total, err}
	}()
	go func() {
		n, total, err := uc.analyticsRepo.GetVentasMetrics(ctx, clienteID, monthStart, todayEnd)
		monthCh <- metricsResult{n, total, err}
	}()
	go func() {
		list, err := uc.analyticsRepo.GetTopAsesores(ctx, clienteID, monthStart, todayEnd, dashboardTopAsesores)
		asesoresCh <- asesoresResult{list, err}
	}()

	today := <-todayCh
	month := <-monthCh
	asesores := <-asesoresCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if asesores.err != nil {
		return nil, fmt.Errorf("dashboard: top asesores: %w", asesores.err)
	}

	top := make([]dto.AsesorDTO, 0, len(asesores.list))
	for _, a := range asesores.list {
		top = append(top, dto.AsesorDTO{Asesor: a.Asesor, Ventas: a.Ventas, Monto: a.Monto.Round(2)})
	}
	return &dto.VentasResumenDTO{
		Hoy:         dto.PeriodoDTO{Ventas: today.count, Monto: today.total.Round(2)},
		Mes:         dto.PeriodoDTO{Ventas: month.count, Monto: month.total.Round(2)},
		TopAsesores: top,
		DateLabel:   monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
