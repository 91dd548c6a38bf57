package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
)

// writeError traduce errores de dominio a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnknownTable):
		status, code = fiber.StatusNotFound, "UNKNOWN_TABLE"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrClienteInactivo):
		status, code = fiber.StatusForbidden, "CLIENTE_INACTIVO"
	case errors.Is(err, domain.ErrReportFailed):
		status, code = fiber.StatusBadGateway, "REPORT_FAILED"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
