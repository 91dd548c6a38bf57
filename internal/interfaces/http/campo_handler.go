package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
)

// CampoHandler definiciones de campos adicionales de un cliente.
type CampoHandler struct {
	uc *usecase.CampoUseCase
}

// NewCampoHandler construye el handler.
func NewCampoHandler(uc *usecase.CampoUseCase) *CampoHandler {
	return &CampoHandler{uc: uc}
}

// List godoc
// @Summary      Listar campos adicionales
// @Tags         campos
// @Produce      json
// @Param        clienteId  path   string  true   "ID del cliente"
// @Param        entidad    query  string  false  "ventas | contactos"
// @Success      200  {object}  dto.FieldsResponse
// @Router       /api/clientes/{clienteId}/campos [get]
func (h *CampoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Params("clienteId"), c.Query("entidad"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Definir campo adicional (admin)
// @Tags         campos
// @Accept       json
// @Produce      json
// @Param        clienteId  path  string                  true  "ID del cliente"
// @Param        body       body  dto.CreateCampoRequest  true  "Definición"
// @Success      201  {object}  dto.FieldDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/campos [post]
func (h *CampoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), c.Params("clienteId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar campo adicional (admin)
// @Tags         campos
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        id         path  string  true  "ID de la definición"
// @Success      204
// @Router       /api/clientes/{clienteId}/campos/{id} [delete]
func (h *CampoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("clienteId"), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
