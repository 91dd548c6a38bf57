package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/encoder"
)

// TableHandler endpoints de las tablas configurables (ventas, contactos).
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// tableScope arma el alcance de preferencias: tabla de la ruta, usuario del token y cliente de la ruta.
func tableScope(c *fiber.Ctx) table.Scope {
	return table.Scope{
		Feature:   c.Params("tabla"),
		UserID:    GetUserID(c),
		ClienteID: c.Params("clienteId"),
	}
}

// Columns godoc
// @Summary      Catálogo de columnas y preferencias del usuario
// @Tags         tablas
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        tabla      path  string  true  "ventas | contactos"
// @Success      200  {object}  dto.ColumnsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/columnas [get]
func (h *TableHandler) Columns(c *fiber.Ctx) error {
	out, err := h.uc.Columns(c.Context(), tableScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePreferences godoc
// @Summary      Guardar columnas visibles y su orden
// @Tags         tablas
// @Accept       json
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        tabla      path  string  true  "ventas | contactos"
// @Param        body       body  dto.PreferencesRequest  true  "visible y order"
// @Success      200  {object}  dto.PreferencesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/preferencias [put]
func (h *TableHandler) UpdatePreferences(c *fiber.Ctx) error {
	var in dto.PreferencesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePreferences(c.Context(), tableScope(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ResetPreferences godoc
// @Summary      Restaurar columnas por defecto
// @Tags         tablas
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        tabla      path  string  true  "ventas | contactos"
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/preferencias [delete]
func (h *TableHandler) ResetPreferences(c *fiber.Ctx) error {
	out, err := h.uc.ResetPreferences(c.Context(), tableScope(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rows godoc
// @Summary      Página de la tabla: filtro, orden, paginación y columnas visibles
// @Tags         tablas
// @Produce      json,html
// @Param        clienteId  path   string  true   "ID del cliente"
// @Param        tabla      path   string  true   "ventas | contactos"
// @Param        q          query  string  false  "Texto a buscar"
// @Param        sort       query  string  false  "ID de columna"
// @Param        dir        query  string  false  "asc | desc"
// @Param        page       query  int     false  "Página (desde 1)"
// @Param        page_size  query  int     false  "Filas por página"
// @Param        formato    query  string  false  "json | html"
// @Success      200  {object}  dto.TableViewResponse
// @Router       /api/clientes/{clienteId}/tablas/{tabla}/filas [get]
func (h *TableHandler) Rows(c *fiber.Ctx) error {
	var q dto.TableQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Render(c.Context(), tableScope(c), q)
	if err != nil {
		return writeError(c, err)
	}
	if !wantsHTML(c) {
		return c.JSON(out)
	}
	var buf bytes.Buffer
	if err := encoder.WriteTable(&buf, viewFromResponse(out)); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func wantsHTML(c *fiber.Ctx) bool {
	if f := c.Query("formato"); f != "" {
		return strings.EqualFold(f, "html")
	}
	return c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML
}

func viewFromResponse(out *dto.TableViewResponse) table.View {
	v := table.View{Columns: make([]table.Column, 0, len(out.Columns))}
	for _, col := range out.Columns {
		v.Columns = append(v.Columns, table.Column{ID: col.ID, Label: col.Label, Type: col.Type, IsCustom: col.IsCustom})
	}
	if out.Placeholder != nil {
		v.Placeholder = &table.Placeholder{ColSpan: out.Placeholder.ColSpan, Text: out.Placeholder.Text}
		return v
	}
	for _, r := range out.Rows {
		v.Cells = append(v.Cells, r.Cells)
	}
	return v
}
