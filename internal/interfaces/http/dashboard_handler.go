package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ventas-admin-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard de ventas.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResumen devuelve las ventas del día y del mes en curso del cliente.
// GET /api/clientes/:clienteId/dashboard/resumen
//
// Respuesta: VentasResumenDTO (hoy, mes, top_asesores[5], date_label).
// No requiere parámetros; las fechas se calculan automáticamente en el servidor.
func (h *DashboardHandler) GetResumen(c *fiber.Ctx) error {
	summary, err := h.uc.GetResumen(c.Context(), c.Params("clienteId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
