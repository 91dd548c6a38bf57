package columns_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/pkg/logger"
)

type stubSource struct {
	fields []columns.FieldDefinition
	err    error
}

func (s stubSource) FetchFields(_ context.Context, _, _ string) ([]columns.FieldDefinition, error) {
	return s.fields, s.err
}

func ventasFeature() table.Feature {
	return table.Feature{
		Name:    "ventas",
		Entidad: "ventas",
		BaseColumns: []table.Column{
			{ID: "nombre", Label: "Nombre", Field: "nombre"},
			{ID: "email", Label: "Email", Field: "email"},
			{ID: "asesor", Label: "Asesor", Field: "asesor"},
		},
		DefaultVisible: 2,
		Reserved:       []string{"id", "fecha_venta"},
	}
}

func TestRegistry_CombinaBaseYAdicionales(t *testing.T) {
	src := stubSource{fields: []columns.FieldDefinition{
		{ID: "sede_principal", Type: "text"},
		{ID: "semestre", Label: "Semestre", Type: "number"},
		{ID: "email", Label: "Correo", Type: "text"},
		{ID: "fecha_venta", Label: "Fecha", Type: "date"},
		{ID: "  "},
	}}
	reg := columns.NewRegistry(src, nil)

	c, fetched := reg.Catalog(context.Background(), ventasFeature(), "c1")

	assert.True(t, fetched)
	assert.Equal(t, []string{
		"nombre", "email", "asesor",
		"campos_adicionales.sede_principal", "campos_adicionales.semestre",
	}, c.IDs())
	sede, _ := c.Lookup("campos_adicionales.sede_principal")
	assert.Equal(t, "Sede Principal", sede.Label)
	sem, _ := c.Lookup("campos_adicionales.semestre")
	assert.Equal(t, table.TypeNumber, sem.Type)
}

func TestRegistry_FalloDelOrigenSoloBase(t *testing.T) {
	var buf bytes.Buffer
	reg := columns.NewRegistry(stubSource{err: errors.New("timeout")}, logger.NewWithWriter(&buf, "info"))

	c, fetched := reg.Catalog(context.Background(), ventasFeature(), "c1")

	assert.False(t, fetched)
	assert.Equal(t, []string{"nombre", "email", "asesor"}, c.IDs())
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"cliente_id":"c1"`)
}
