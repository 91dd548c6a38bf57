package usecase

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ettle/strcase"
	"github.com/google/uuid"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var fieldIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

var tiposCampo = []string{
	entity.CampoTexto, entity.CampoNumero, entity.CampoFecha, entity.CampoSeleccion, entity.CampoBooleano,
}

// CampoUseCase administra las definiciones de campos adicionales de un cliente.
type CampoUseCase struct {
	repo     repository.CampoRepository
	features columns.FeatureCatalog
}

// NewCampoUseCase construye el caso de uso. features se usa para rechazar ids reservados.
func NewCampoUseCase(repo repository.CampoRepository, features columns.FeatureCatalog) *CampoUseCase {
	return &CampoUseCase{repo: repo, features: features}
}

// List devuelve las definiciones del cliente en la forma {fields: [...]}. entidad vacía no filtra.
func (uc *CampoUseCase) List(ctx context.Context, clienteID, entidad string) (*dto.FieldsResponse, error) {
	list, err := uc.repo.ListByCliente(ctx, clienteID, entidad)
	if err != nil {
		return nil, err
	}
	out := &dto.FieldsResponse{Fields: make([]dto.FieldDTO, 0, len(list))}
	for _, c := range list {
		out.Fields = append(out.Fields, campoToDTO(c))
	}
	return out, nil
}

// Create define un campo adicional. El id se normaliza a snake_case y no puede
// coincidir con un nombre reservado de la tabla.
func (uc *CampoUseCase) Create(ctx context.Context, clienteID string, in dto.CreateCampoRequest) (*dto.FieldDTO, error) {
	if in.Entidad != entity.EntidadVentas && in.Entidad != entity.EntidadContactos {
		return nil, fmt.Errorf("%w: entidad debe ser ventas o contactos", domain.ErrInvalidInput)
	}
	fieldID := strcase.ToSnake(strings.TrimSpace(in.ID))
	if !fieldIDPattern.MatchString(fieldID) {
		return nil, fmt.Errorf("%w: id de campo inválido", domain.ErrInvalidInput)
	}
	tipo := strings.ToLower(strings.TrimSpace(in.Type))
	if tipo == "" {
		tipo = entity.CampoTexto
	}
	if !slices.Contains(tiposCampo, tipo) {
		return nil, fmt.Errorf("%w: tipo %q no soportado", domain.ErrInvalidInput, in.Type)
	}
	feature, err := uc.features.Get(in.Entidad)
	if err != nil {
		return nil, err
	}
	if slices.Contains(feature.ReservedNames(), fieldID) {
		return nil, fmt.Errorf("%w: %q es un nombre reservado", domain.ErrInvalidInput, fieldID)
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = strcase.ToCase(fieldID, strcase.TitleCase, ' ')
	}
	c := &entity.CampoDefinicion{
		ID:        uuid.New().String(),
		ClienteID: clienteID,
		Entidad:   in.Entidad,
		FieldID:   fieldID,
		Label:     label,
		Tipo:      tipo,
		Opciones:  in.Options,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := campoToDTO(c)
	return &out, nil
}

// Delete elimina una definición del cliente por su definition_id.
func (uc *CampoUseCase) Delete(ctx context.Context, clienteID, id string) error {
	return uc.repo.Delete(ctx, clienteID, id)
}

func campoToDTO(c *entity.CampoDefinicion) dto.FieldDTO {
	return dto.FieldDTO{
		ID:           c.FieldID,
		Label:        c.Label,
		Type:         c.Tipo,
		Options:      c.Opciones,
		Entidad:      c.Entidad,
		DefinitionID: c.ID,
	}
}
