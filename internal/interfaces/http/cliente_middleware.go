package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
)

// LocalCliente key del cliente autorizado en c.Locals.
const LocalCliente = "cliente"

// clienteAuthorizer es el contrato mínimo que necesita el middleware.
// Lo implementa *usecase.ClienteUseCase.
type clienteAuthorizer interface {
	Authorize(ctx context.Context, user entity.Usuario, clienteID string) (*entity.Cliente, error)
}

// RequireClienteAccess verifica que el usuario del token pueda operar sobre el cliente
// del parámetro :clienteId y que ese cliente esté activo. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 FORBIDDEN → el cliente no es el del token (y el usuario no es admin).
//   - 404 NOT_FOUND → el cliente no existe.
//   - 403 CLIENTE_INACTIVO → el cliente está suspendido o inactivo.
//   - 503 CLIENT_CHECK_FAILED → fallo de infraestructura al consultar el cliente.
func RequireClienteAccess(checker clienteAuthorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cliente, err := checker.Authorize(c.Context(), CurrentUser(c), c.Params("clienteId"))
		switch {
		case err == nil:
			c.Locals(LocalCliente, cliente)
			return c.Next()
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "clienteId es requerido"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a este cliente"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		case errors.Is(err, domain.ErrClienteInactivo):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CLIENTE_INACTIVO", Message: err.Error()})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "CLIENT_CHECK_FAILED",
				Message: "no se pudo verificar el cliente, intente más tarde",
			})
		}
	}
}

// GetCliente devuelve el cliente autorizado por RequireClienteAccess.
func GetCliente(c *fiber.Ctx) *entity.Cliente {
	cl, _ := c.Locals(LocalCliente).(*entity.Cliente)
	return cl
}
