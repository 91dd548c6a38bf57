package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP para el recurso Cliente.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler inyectando el caso de uso.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente (admin)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("clienteId"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes (admin)
// @Tags         clientes
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ClienteListResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
