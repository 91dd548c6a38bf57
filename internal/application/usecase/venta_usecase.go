package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

const (
	ventaEstadoInicial    = "registrada"
	contactoEstadoInicial = "nuevo"
)

// VentaUseCase registro y consulta de ventas de un cliente.
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// Create registra una venta. fecha_venta vacía toma la fecha de hoy.
func (uc *VentaUseCase) Create(ctx context.Context, clienteID string, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if in.Monto.IsNegative() {
		return nil, fmt.Errorf("%w: monto no puede ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	fecha := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if in.FechaVenta != "" {
		t, err := time.ParseInLocation(time.DateOnly, in.FechaVenta, now.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_venta debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		fecha = t
	}
	estado := in.Estado
	if estado == "" {
		estado = ventaEstadoInicial
	}
	v := &entity.Venta{
		ID:                uuid.New().String(),
		ClienteID:         clienteID,
		Nombre:            strings.TrimSpace(in.Nombre),
		Apellido:          strings.TrimSpace(in.Apellido),
		Email:             strings.TrimSpace(in.Email),
		Telefono:          strings.TrimSpace(in.Telefono),
		Asesor:            strings.TrimSpace(in.Asesor),
		Programa:          strings.TrimSpace(in.Programa),
		FechaVenta:        fecha,
		Monto:             in.Monto.Round(2),
		Estado:            estado,
		CamposAdicionales: in.CamposAdicionales,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return ventaToResponse(v), nil
}

// GetByID obtiene una venta del cliente; nil, nil si no existe.
func (uc *VentaUseCase) GetByID(ctx context.Context, clienteID, id string) (*dto.VentaResponse, error) {
	v, err := uc.repo.GetByID(ctx, clienteID, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return ventaToResponse(v), nil
}

// Delete elimina una venta del cliente.
func (uc *VentaUseCase) Delete(ctx context.Context, clienteID, id string) error {
	return uc.repo.Delete(ctx, clienteID, id)
}

func ventaToResponse(v *entity.Venta) *dto.VentaResponse {
	extra := v.CamposAdicionales
	if extra == nil {
		extra = map[string]any{}
	}
	return &dto.VentaResponse{
		ID:                v.ID,
		ClienteID:         v.ClienteID,
		Nombre:            v.Nombre,
		Apellido:          v.Apellido,
		Email:             v.Email,
		Telefono:          v.Telefono,
		Asesor:            v.Asesor,
		Programa:          v.Programa,
		FechaVenta:        v.FechaVenta,
		Monto:             v.Monto,
		Estado:            v.Estado,
		CamposAdicionales: extra,
		CreatedAt:         v.CreatedAt,
	}
}

// ContactoUseCase registro y consulta de contactos de un cliente.
type ContactoUseCase struct {
	repo repository.ContactoRepository
}

// NewContactoUseCase construye el caso de uso.
func NewContactoUseCase(repo repository.ContactoRepository) *ContactoUseCase {
	return &ContactoUseCase{repo: repo}
}

// Create registra un contacto.
func (uc *ContactoUseCase) Create(ctx context.Context, clienteID string, in dto.CreateContactoRequest) (*dto.ContactoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	estado := in.Estado
	if estado == "" {
		estado = contactoEstadoInicial
	}
	now := time.Now()
	c := &entity.Contacto{
		ID:                uuid.New().String(),
		ClienteID:         clienteID,
		Nombre:            strings.TrimSpace(in.Nombre),
		Apellido:          strings.TrimSpace(in.Apellido),
		Email:             strings.TrimSpace(in.Email),
		Telefono:          strings.TrimSpace(in.Telefono),
		Asesor:            strings.TrimSpace(in.Asesor),
		Estado:            estado,
		Origen:            strings.TrimSpace(in.Origen),
		CamposAdicionales: in.CamposAdicionales,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return contactoToResponse(c), nil
}

// GetByID obtiene un contacto del cliente; nil, nil si no existe.
func (uc *ContactoUseCase) GetByID(ctx context.Context, clienteID, id string) (*dto.ContactoResponse, error) {
	c, err := uc.repo.GetByID(ctx, clienteID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return contactoToResponse(c), nil
}

// Delete elimina un contacto del cliente.
func (uc *ContactoUseCase) Delete(ctx context.Context, clienteID, id string) error {
	return uc.repo.Delete(ctx, clienteID, id)
}

func contactoToResponse(c *entity.Contacto) *dto.ContactoResponse {
	extra := c.CamposAdicionales
	if extra == nil {
		extra = map[string]any{}
	}
	return &dto.ContactoResponse{
		ID:                c.ID,
		ClienteID:         c.ClienteID,
		Nombre:            c.Nombre,
		Apellido:          c.Apellido,
		Email:             c.Email,
		Telefono:          c.Telefono,
		Asesor:            c.Asesor,
		Estado:            c.Estado,
		Origen:            c.Origen,
		CamposAdicionales: extra,
		CreatedAt:         c.CreatedAt,
	}
}
