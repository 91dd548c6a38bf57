package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
)

func TestVentaUseCase_Create(t *testing.T) {
	repo := &fakeVentas{}
	uc := usecase.NewVentaUseCase(repo)

	got, err := uc.Create(context.Background(), clienteID, dto.CreateVentaRequest{
		Nombre:            " Ana ",
		FechaVenta:        "2024-05-03",
		Monto:             decimal.RequireFromString("1500.456"),
		CamposAdicionales: map[string]any{"sede": "Norte"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, "registrada", got.Estado)
	assert.Equal(t, "2024-05-03", got.FechaVenta.Format("2006-01-02"))
	assert.Equal(t, "1500.46", got.Monto.StringFixed(2))
	require.Len(t, repo.list, 1)

	found, err := uc.GetByID(context.Background(), clienteID, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, found.ID)

	other, err := uc.GetByID(context.Background(), "otro-cliente", got.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestVentaUseCase_CreateInvalida(t *testing.T) {
	uc := usecase.NewVentaUseCase(&fakeVentas{})
	ctx := context.Background()

	_, err := uc.Create(ctx, clienteID, dto.CreateVentaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, clienteID, dto.CreateVentaRequest{Nombre: "A", FechaVenta: "03/05/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, clienteID, dto.CreateVentaRequest{Nombre: "A", Monto: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVentaRow_CamposAdicionalesTipados(t *testing.T) {
	f := newTableFixture(t)
	f.addVenta("1", "Ana", "Luis", 10, 4, map[string]any{"semestre": float64(3), "sede": nil})
	rows, err := usecase.NewVentaRows(f.ventas).Rows(context.Background(), clienteCentral())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Universidad Central", rows[0].Field("cliente").Text())
	assert.Equal(t, "3", rows[0].Custom("semestre").Text())
	assert.True(t, rows[0].Custom("sede").IsNull())
	assert.Equal(t, "2024-05-04", rows[0].Field("fecha_venta").Text())
}
