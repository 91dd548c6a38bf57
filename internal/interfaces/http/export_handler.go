package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/pkg/download"
)

// ExportHandler exportación de tablas y reportes generados en el servidor.
type ExportHandler struct {
	export  *export.ExportUseCase
	reports *export.ReportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(exp *export.ExportUseCase, reports *export.ReportUseCase) *ExportHandler {
	return &ExportHandler{export: exp, reports: reports}
}

// Export godoc
// @Summary      Exportar la tabla (filtro y orden actuales, todas las filas)
// @Tags         exportacion
// @Produce      octet-stream
// @Param        clienteId  path   string  true   "ID del cliente"
// @Param        tabla      path   string  true   "ventas | contactos"
// @Param        formato    query  string  false  "csv | xls | xlsx | pdf"  default(csv)
// @Param        columnas   query  string  false  "IDs de columna separados por coma"
// @Param        q          query  string  false  "Texto a buscar"
// @Param        sort       query  string  false  "ID de columna"
// @Param        dir        query  string  false  "asc | desc"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/exportar [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	f, err := h.export.Export(c.Context(), tableScope(c), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, download.ContentDisposition(f.Name))
	return c.Send(f.Body)
}

// Report godoc
// @Summary      Generar el reporte completo en el servidor
// @Tags         exportacion
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        tabla      path  string  true  "ventas | contactos"
// @Success      201  {object}  dto.ReportResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/reporte [post]
func (h *ExportHandler) Report(c *fiber.Ctx) error {
	out, err := h.reports.Generate(c.Context(), tableScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download godoc
// @Summary      Descargar un reporte generado (acepta ?token=)
// @Tags         exportacion
// @Produce      octet-stream
// @Param        clienteId  path   string  true   "ID del cliente"
// @Param        file       path   string  true   "Nombre del archivo"
// @Param        token      query  string  false  "JWT cuando no se envía el header Authorization"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exports/{clienteId}/{file} [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	file := c.Params("file")
	rc, contentType, err := h.reports.Open(c.Context(), c.Params("clienteId"), file)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, download.ContentDisposition(file))
	return c.SendStream(rc)
}
