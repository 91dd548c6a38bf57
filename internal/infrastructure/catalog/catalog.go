// Package catalog carga la definición de las tablas configurables (columnas base,
// tamaños de página, campos de búsqueda) desde un YAML embebido.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

const documentVersion = "1"

//go:embed features.yaml
var embeddedFeatures []byte

type document struct {
	Version  string          `yaml:"version"`
	Features []table.Feature `yaml:"features"`
}

// Features registro inmutable de tablas por nombre.
type Features struct {
	byName map[string]table.Feature
}

// Default devuelve el catálogo embebido (ventas, contactos).
func Default() (*Features, error) {
	return Decode(bytes.NewReader(embeddedFeatures))
}

// MustDefault como Default pero hace panic si el YAML embebido es inválido.
func MustDefault() *Features {
	f, err := Default()
	if err != nil {
		panic(err)
	}
	return f
}

// Decode lee un catálogo YAML desde cualquier reader.
func Decode(r io.Reader) (*Features, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog: documento vacío")
		}
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if doc.Version == "" {
		doc.Version = documentVersion
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	out := &Features{byName: make(map[string]table.Feature, len(doc.Features))}
	for _, f := range doc.Features {
		out.byName[f.Name] = f
	}
	return out, nil
}

func (doc *document) validate() error {
	if doc.Version != documentVersion {
		return fmt.Errorf("catalog: versión no soportada %q", doc.Version)
	}
	seen := make(map[string]bool, len(doc.Features))
	for idx, f := range doc.Features {
		if f.Name == "" {
			return fmt.Errorf("catalog: tabla en índice %d sin name", idx)
		}
		if seen[f.Name] {
			return fmt.Errorf("catalog: tabla duplicada %s", f.Name)
		}
		seen[f.Name] = true
		if len(f.BaseColumns) == 0 {
			return fmt.Errorf("catalog: tabla %s sin columnas base", f.Name)
		}
		cols := make(map[string]bool, len(f.BaseColumns))
		for _, col := range f.BaseColumns {
			if col.ID == "" || col.Field == "" {
				return fmt.Errorf("catalog: tabla %s tiene una columna sin id o field", f.Name)
			}
			if cols[col.ID] {
				return fmt.Errorf("catalog: tabla %s duplica la columna %s", f.Name, col.ID)
			}
			cols[col.ID] = true
		}
	}
	return nil
}

// Get devuelve la tabla por nombre o domain.ErrUnknownTable.
func (f *Features) Get(name string) (table.Feature, error) {
	feat, ok := f.byName[name]
	if !ok {
		return table.Feature{}, fmt.Errorf("%w: %s", domain.ErrUnknownTable, name)
	}
	return feat, nil
}

// Names nombres de las tablas registradas, ordenados.
func (f *Features) Names() []string {
	out := make([]string, 0, len(f.byName))
	for name := range f.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
