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

// ClienteUseCase aplica reglas de negocio para clientes (tenants) y el control de acceso a ellos.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso con el puerto de persistencia.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create registra un cliente activo.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Estado:    entity.ClienteActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return entityToClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID; nil, nil si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return entityToClienteResponse(c), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(ctx context.Context, limit, offset int) (*dto.ClienteListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Authorize verifica que el usuario pueda operar sobre el cliente.
// Los admin operan sobre cualquier cliente; el resto solo sobre el suyo.
// Errores: domain.ErrForbidden, domain.ErrNotFound, domain.ErrClienteInactivo,
// o un error de infraestructura.
func (uc *ClienteUseCase) Authorize(ctx context.Context, user entity.Usuario, clienteID string) (*entity.Cliente, error) {
	if clienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !user.EsAdmin() && user.ClienteID != clienteID {
		return nil, domain.ErrForbidden
	}
	c, err := uc.repo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.Activo() {
		return nil, domain.ErrClienteInactivo
	}
	return c, nil
}

func entityToClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Estado:    c.Estado,
		CreatedAt: c.CreatedAt,
	}
}
