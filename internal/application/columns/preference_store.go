package columns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jhoicas/ventas-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/pkg/logger"
)

const preferencesSchemaName = "column_preferences.json"

const preferencesSchema = `{
  "type": "object",
  "required": ["visible", "order"],
  "properties": {
    "visible": {"type": "array", "items": {"type": "string"}},
    "order":   {"type": "array", "items": {"type": "string"}}
  }
}`

// PreferenceStore lee y escribe preferencias de columnas sobre un PreferenceRepository.
// Ningún fallo de lectura o escritura llega al llamador.
type PreferenceStore struct {
	repo   repository.PreferenceRepository
	schema *jsonschema.Schema
	log    *logger.Logger
}

// NewPreferenceStore compila el esquema del payload y construye el store.
func NewPreferenceStore(repo repository.PreferenceRepository, log *logger.Logger) (*PreferenceStore, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(preferencesSchemaName, bytes.NewReader([]byte(preferencesSchema))); err != nil {
		return nil, fmt.Errorf("preferences: load schema: %w", err)
	}
	schema, err := compiler.Compile(preferencesSchemaName)
	if err != nil {
		return nil, fmt.Errorf("preferences: compile schema: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PreferenceStore{repo: repo, schema: schema, log: log}, nil
}

// Load devuelve las preferencias guardadas o nil si no existen,
// no se pudieron leer o el contenido es inválido.
func (s *PreferenceStore) Load(ctx context.Context, scope table.Scope) *table.Preferences {
	raw, err := s.repo.Get(ctx, scope.Key())
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope.Key()).Msg("leer preferencias")
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	p, err := s.decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope.Key()).Msg("preferencias inválidas; se ignoran")
		return nil
	}
	return p
}

func (s *PreferenceStore) decode(raw []byte) (*table.Preferences, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, err
	}
	var p table.Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save guarda {visible, order}. Los errores se registran y se descartan.
func (s *PreferenceStore) Save(ctx context.Context, scope table.Scope, p table.Preferences) {
	payload, err := Encode(p)
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope.Key()).Msg("serializar preferencias")
		return
	}
	if err := s.repo.Put(ctx, scope.Key(), payload); err != nil {
		s.log.Warn().Err(err).Str("scope", scope.Key()).Msg("guardar preferencias")
	}
}

// Reset restaura las preferencias por defecto del catálogo, las guarda y las devuelve.
func (s *PreferenceStore) Reset(ctx context.Context, scope table.Scope, c *table.Catalog, defaultVisible int) table.Preferences {
	p := table.DefaultPreferences(c, defaultVisible)
	s.Save(ctx, scope, p)
	return p
}

// Encode serialización determinista de las preferencias (listas vacías en vez de null).
func Encode(p table.Preferences) ([]byte, error) {
	if p.Visible == nil {
		p.Visible = []string{}
	}
	if p.Order == nil {
		p.Order = []string{}
	}
	return json.Marshal(p)
}
