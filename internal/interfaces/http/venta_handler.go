package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
)

// VentaHandler maneja las peticiones HTTP para ventas de un cliente.
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler inyectando el caso de uso.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        clienteId  path  string                   true  "ID del cliente"
// @Param        body       body  dto.CreateVentaRequest  true  "Datos de la venta"
// @Success      201  {object}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), c.Params("clienteId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         ventas
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        id         path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("clienteId"), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        id         path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("clienteId"), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ContactoHandler maneja las peticiones HTTP para contactos de un cliente.
type ContactoHandler struct {
	uc *usecase.ContactoUseCase
}

// NewContactoHandler construye el handler.
func NewContactoHandler(uc *usecase.ContactoUseCase) *ContactoHandler {
	return &ContactoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar contacto
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Param        clienteId  path  string                      true  "ID del cliente"
// @Param        body       body  dto.CreateContactoRequest  true  "Datos del contacto"
// @Success      201  {object}  dto.ContactoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/contactos [post]
func (h *ContactoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), c.Params("clienteId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contacto
// @Tags         contactos
// @Produce      json
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        id         path  string  true  "ID del contacto"
// @Success      200  {object}  dto.ContactoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{clienteId}/contactos/{id} [get]
func (h *ContactoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("clienteId"), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contacto
// @Tags         contactos
// @Param        clienteId  path  string  true  "ID del cliente"
// @Param        id         path  string  true  "ID del contacto"
// @Success      204
// @Router       /api/clientes/{clienteId}/contactos/{id} [delete]
func (h *ContactoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("clienteId"), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
