package columns

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
)

var _ FieldSource = (*RepositoryFieldSource)(nil)

// RepositoryFieldSource lee las definiciones desde el repositorio de campos (PostgreSQL).
type RepositoryFieldSource struct {
	repo repository.CampoRepository
}

// NewRepositoryFieldSource construye el origen sobre el repositorio de campos.
func NewRepositoryFieldSource(repo repository.CampoRepository) *RepositoryFieldSource {
	return &RepositoryFieldSource{repo: repo}
}

// FetchFields lista los campos del cliente para la entidad.
func (s *RepositoryFieldSource) FetchFields(ctx context.Context, clienteID, entidad string) ([]FieldDefinition, error) {
	list, err := s.repo.ListByCliente(ctx, clienteID, entidad)
	if err != nil {
		return nil, fmt.Errorf("listar campos: %w", err)
	}
	out := make([]FieldDefinition, 0, len(list))
	for _, c := range list {
		out = append(out, FieldDefinition{ID: c.FieldID, Label: c.Label, Type: c.Tipo, Options: c.Opciones})
	}
	return out, nil
}
