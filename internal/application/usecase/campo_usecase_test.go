package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/catalog"
)

func TestCampoUseCase_CreateNormalizaID(t *testing.T) {
	repo := &fakeCampos{}
	uc := usecase.NewCampoUseCase(repo, catalog.MustDefault())

	got, err := uc.Create(context.Background(), clienteID, dto.CreateCampoRequest{Entidad: "ventas", ID: "SedePrincipal"})
	require.NoError(t, err)

	assert.Equal(t, "sede_principal", got.ID)
	assert.Equal(t, "Sede Principal", got.Label)
	assert.Equal(t, "text", got.Type)
	assert.NotEmpty(t, got.DefinitionID)

	list, err := uc.List(context.Background(), clienteID, "ventas")
	require.NoError(t, err)
	require.Len(t, list.Fields, 1)
	assert.Equal(t, "sede_principal", list.Fields[0].ID)
}

func TestCampoUseCase_CreateRechazaReservadosYTipos(t *testing.T) {
	uc := usecase.NewCampoUseCase(&fakeCampos{}, catalog.MustDefault())
	ctx := context.Background()

	cases := []dto.CreateCampoRequest{
		{Entidad: "ventas", ID: "fecha_venta"},
		{Entidad: "ventas", ID: "email"},
		{Entidad: "usuarios", ID: "sede"},
		{Entidad: "ventas", ID: "sede", Type: "color"},
		{Entidad: "ventas", ID: "9x"},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, clienteID, in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%+v", in)
	}
}

func TestCampoUseCase_Duplicado(t *testing.T) {
	uc := usecase.NewCampoUseCase(&fakeCampos{}, catalog.MustDefault())
	ctx := context.Background()
	_, err := uc.Create(ctx, clienteID, dto.CreateCampoRequest{Entidad: "contactos", ID: "sede"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, clienteID, dto.CreateCampoRequest{Entidad: "contactos", ID: "sede"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
