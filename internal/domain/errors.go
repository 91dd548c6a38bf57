package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrUnknownTable    = errors.New("tabla desconocida")
	ErrReportFailed    = errors.New("no se pudo generar el reporte")
	ErrClienteInactivo = errors.New("el cliente no está activo")
)
