package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/columns"
	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/catalog"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/memory"
)

const clienteID = "c-1"

var ventasScope = table.Scope{Feature: "ventas", UserID: "u-1", ClienteID: clienteID}

var ventasBaseIDs = []string{"id", "nombre", "apellido", "email", "telefono", "asesor", "cliente", "fecha_venta", "programa", "monto", "estado"}

type tableFixture struct {
	uc     *usecase.TableUseCase
	prefs  *columns.PreferenceStore
	repo   *memory.PreferenceRepo
	source *stubSource
	ventas *fakeVentas
}

func newTableFixture(t *testing.T) *tableFixture {
	t.Helper()
	source := &stubSource{fields: []columns.FieldDefinition{
		{ID: "sede", Label: "Sede", Type: "text"},
		{ID: "semestre", Label: "Semestre", Type: "number"},
	}}
	repo := memory.NewPreferenceRepository()
	prefs, err := columns.NewPreferenceStore(repo, nil)
	require.NoError(t, err)
	ventas := &fakeVentas{}
	clientes := newFakeClientes(clienteCentral())
	uc := usecase.NewTableUseCase(
		catalog.MustDefault(),
		columns.NewRegistry(source, nil),
		prefs,
		clientes,
		map[string]usecase.RowSource{entity.EntidadVentas: usecase.NewVentaRows(ventas)},
		nil,
	)
	return &tableFixture{uc: uc, prefs: prefs, repo: repo, source: source, ventas: ventas}
}

func (f *tableFixture) addVenta(id, nombre, asesor string, monto int64, day int, extra map[string]any) {
	f.ventas.list = append(f.ventas.list, &entity.Venta{
		ID:                id,
		ClienteID:         clienteID,
		Nombre:            nombre,
		Asesor:            asesor,
		FechaVenta:        time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		Monto:             decimal.NewFromInt(monto),
		CamposAdicionales: extra,
	})
}

func TestColumns_PreferenciasPorDefecto(t *testing.T) {
	f := newTableFixture(t)

	resp, err := f.uc.Columns(context.Background(), ventasScope)
	require.NoError(t, err)

	assert.True(t, resp.CustomFieldsLoaded)
	assert.Equal(t, []string{"id", "nombre", "apellido", "email", "telefono", "asesor", "cliente", "fecha_venta"}, resp.Visible)
	require.Len(t, resp.Columns, 13)
	assert.Equal(t, "campos_adicionales.sede", resp.Order[11])
	assert.Equal(t, "campos_adicionales.semestre", resp.Order[12])
	assert.Equal(t, 10, resp.DefaultPageSize)
}

func TestColumns_AgregaAdicionalesNuevosAlOrdenGuardado(t *testing.T) {
	ctx := context.Background()
	f := newTableFixture(t)
	f.prefs.Save(ctx, ventasScope, table.Preferences{
		Visible: []string{"nombre"},
		Order:   []string{"monto", "nombre", "campos_adicionales.sede"},
	})

	resp, err := f.uc.Columns(ctx, ventasScope)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"monto", "nombre", "campos_adicionales.sede",
		"id", "apellido", "email", "telefono", "asesor", "cliente", "fecha_venta", "programa", "estado",
		"campos_adicionales.semestre",
	}, resp.Order)
	assert.Equal(t, []string{"nombre"}, resp.Visible)
	stored := f.prefs.Load(ctx, ventasScope)
	require.NotNil(t, stored)
	assert.Equal(t, resp.Order, stored.Order, "el orden combinado se vuelve a guardar")
}

func TestColumns_FalloDeCamposNoTocaPreferencias(t *testing.T) {
	ctx := context.Background()
	f := newTableFixture(t)
	f.source.err = errCaido
	order := append([]string{"campos_adicionales.sede"}, ventasBaseIDs...)
	f.prefs.Save(ctx, ventasScope, table.Preferences{Visible: []string{"nombre"}, Order: order})
	before, _ := f.repo.Get(ctx, ventasScope.Key())

	resp, err := f.uc.Columns(ctx, ventasScope)
	require.NoError(t, err)

	assert.False(t, resp.CustomFieldsLoaded)
	assert.Len(t, resp.Columns, 11)
	assert.Equal(t, order, resp.Order)
	after, _ := f.repo.Get(ctx, ventasScope.Key())
	assert.Equal(t, before, after)
}

func TestColumns_AgregaColumnasBaseFaltantesAunqueFallenLosCampos(t *testing.T) {
	ctx := context.Background()
	f := newTableFixture(t)
	f.source.err = errCaido
	f.prefs.Save(ctx, ventasScope, table.Preferences{
		Visible: []string{"nombre"},
		Order:   []string{"campos_adicionales.sede", "nombre"},
	})

	resp, err := f.uc.Columns(ctx, ventasScope)
	require.NoError(t, err)

	want := []string{"campos_adicionales.sede", "nombre", "id", "apellido", "email", "telefono", "asesor", "cliente", "fecha_venta", "programa", "monto", "estado"}
	assert.Equal(t, want, resp.Order)
	stored := f.prefs.Load(ctx, ventasScope)
	require.NotNil(t, stored)
	assert.Equal(t, want, stored.Order)
}

func TestColumns_TablaDesconocida(t *testing.T) {
	f := newTableFixture(t)
	_, err := f.uc.Columns(context.Background(), table.Scope{Feature: "usuarios", ClienteID: clienteID})
	assert.True(t, errors.Is(err, domain.ErrUnknownTable))
}

func TestColumns_ClienteInexistente(t *testing.T) {
	f := newTableFixture(t)
	_, err := f.uc.Columns(context.Background(), table.Scope{Feature: "ventas", ClienteID: "otro"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRender_FiltraOrdenaPagina(t *testing.T) {
	f := newTableFixture(t)
	f.addVenta("1", "Ana", "Luis", 300, 1, map[string]any{"sede": "Norte"})
	f.addVenta("2", "Bob", "Marta", 100, 2, nil)
	f.addVenta("3", "Ana", "Pedro", 200, 3, map[string]any{"sede": "Sur"})
	f.prefs.Save(context.Background(), ventasScope, table.Preferences{
		Visible: []string{"nombre", "monto", "campos_adicionales.sede"},
		Order:   []string{"campos_adicionales.sede", "nombre", "monto"},
	})

	resp, err := f.uc.Render(context.Background(), ventasScope, dto.TableQuery{Search: "ANA", Sort: "monto", Dir: "asc", Page: 1, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"campos_adicionales.sede", "nombre", "monto"}, []string{resp.Columns[0].ID, resp.Columns[1].ID, resp.Columns[2].ID})
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "3", resp.Rows[0].ID)
	assert.Equal(t, []string{"Sur", "Ana", "200.00"}, resp.Rows[0].Cells)
	assert.Equal(t, []string{"Norte", "Ana", "300.00"}, resp.Rows[1].Cells)
	assert.Equal(t, 2, resp.Page.Total)
	assert.Equal(t, 5, resp.Page.Size)
	assert.Nil(t, resp.Placeholder)
}

func TestRender_TamanoDePaginaFueraDelMenu(t *testing.T) {
	f := newTableFixture(t)
	for i := 1; i <= 12; i++ {
		f.addVenta(string(rune('a'+i)), "N", "A", int64(i), 1, nil)
	}

	resp, err := f.uc.Render(context.Background(), ventasScope, dto.TableQuery{PageSize: 7, Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.Page.Size)
	assert.Equal(t, 2, resp.Page.Number)
	assert.Len(t, resp.Rows, 2)
}

func TestRender_SinColumnasVisiblesPlaceholder(t *testing.T) {
	f := newTableFixture(t)
	f.addVenta("1", "Ana", "Luis", 300, 1, nil)
	f.prefs.Save(context.Background(), ventasScope, table.Preferences{Visible: []string{}, Order: []string{"nombre"}})

	resp, err := f.uc.Render(context.Background(), ventasScope, dto.TableQuery{})
	require.NoError(t, err)

	require.NotNil(t, resp.Placeholder)
	assert.Equal(t, 1, resp.Placeholder.ColSpan)
	assert.Equal(t, "No se encontraron resultados", resp.Placeholder.Text)
	assert.Empty(t, resp.Rows)
}

func TestRender_FalloDeFilasTablaVacia(t *testing.T) {
	f := newTableFixture(t)
	f.ventas.err = errCaido

	resp, err := f.uc.Render(context.Background(), ventasScope, dto.TableQuery{})
	require.NoError(t, err)

	require.NotNil(t, resp.Placeholder)
	assert.Equal(t, len(resp.Columns), resp.Placeholder.ColSpan)
	assert.Equal(t, 0, resp.Page.Total)
}

func TestUpdatePreferences_DepuraYCompletaOrden(t *testing.T) {
	f := newTableFixture(t)

	resp, err := f.uc.UpdatePreferences(context.Background(), ventasScope, dto.PreferencesRequest{
		Visible: []string{"email", "email", "desconocida", "campos_adicionales.borrado", " "},
		Order:   []string{"email", "nombre"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"email", "campos_adicionales.borrado"}, resp.Visible)
	assert.Equal(t, "email", resp.Order[0])
	assert.Equal(t, "nombre", resp.Order[1])
	assert.Len(t, resp.Order, 13)
}

func TestUpdatePreferences_CuerpoVacio(t *testing.T) {
	f := newTableFixture(t)
	_, err := f.uc.UpdatePreferences(context.Background(), ventasScope, dto.PreferencesRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResetPreferences(t *testing.T) {
	ctx := context.Background()
	f := newTableFixture(t)
	f.prefs.Save(ctx, ventasScope, table.Preferences{Visible: []string{}, Order: []string{"monto"}})

	resp, err := f.uc.ResetPreferences(ctx, ventasScope)
	require.NoError(t, err)

	assert.Len(t, resp.Visible, 8)
	assert.Len(t, resp.Order, 13)
}
