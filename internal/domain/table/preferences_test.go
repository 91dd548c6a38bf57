package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

func catalogo8mas2() *table.Catalog {
	base := make([]table.Column, 0, 10)
	for _, id := range []string{"id", "nombre", "apellido", "email", "telefono", "asesor", "cliente", "programa", "fecha_venta", "monto"} {
		base = append(base, table.Column{ID: id, Field: id})
	}
	custom := []table.Column{
		table.CustomColumn("semestre", "Semestre", "number"),
		table.CustomColumn("sede", "Sede", "text"),
	}
	return table.NewCatalog(base[:8], custom, nil)
}

func TestDefaultPreferences_OchoBaseDosAdicionales(t *testing.T) {
	c := catalogo8mas2()

	p := table.DefaultPreferences(c, 8)

	assert.Equal(t, []string{"id", "nombre", "apellido", "email", "telefono", "asesor", "cliente", "programa"}, p.Visible)
	assert.Equal(t, c.IDs(), p.Order)
	assert.Len(t, p.Order, 10)
}

func TestDefaultPreferences_NMayorQueBase(t *testing.T) {
	c := catalogo8mas2()
	p := table.DefaultPreferences(c, 20)
	assert.Len(t, p.Visible, 8)
}

func TestMergeOrder_NoPierdeNiReordena(t *testing.T) {
	stored := table.Preferences{
		Visible: []string{"nombre"},
		Order:   []string{"email", "nombre", "campos_adicionales.sede"},
	}

	merged, changed := table.MergeOrder(stored, []string{"campos_adicionales.sede", "campos_adicionales.semestre"})

	assert.True(t, changed)
	assert.Equal(t, []string{"email", "nombre", "campos_adicionales.sede", "campos_adicionales.semestre"}, merged.Order)
	assert.Equal(t, []string{"nombre"}, merged.Visible, "los nuevos no se marcan visibles")
	assert.Len(t, stored.Order, 3, "la entrada no se modifica")

	again, changed := table.MergeOrder(merged, []string{"campos_adicionales.semestre"})
	assert.False(t, changed)
	assert.Equal(t, merged.Order, again.Order)
}

func TestScopeKey(t *testing.T) {
	s := table.Scope{Feature: "ventas", UserID: "u1", ClienteID: "c9"}
	assert.Equal(t, "ventas:columns:v1:u1:c9", s.Key())

	s.UserID = ""
	assert.Equal(t, "ventas:columns:v1:anonymous:c9", s.Key())
}
