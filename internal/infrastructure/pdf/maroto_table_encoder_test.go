package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/pdf"
)

func TestMarotoTableEncoder_GeneraPDF(t *testing.T) {
	doc := export.Document{
		Title:   "Ventas - Universidad Central",
		Columns: []table.Column{{ID: "nombre", Label: "Nombre", Field: "nombre"}},
		Rows: []table.Row{
			{ID: "1", Fixed: map[string]table.Value{"nombre": table.String("Ana")}},
			{ID: "2", Fixed: map[string]table.Value{"nombre": table.String("Luis")}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.NewMarotoTableEncoder().Encode(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestMarotoTableEncoder_SinColumnas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pdf.NewMarotoTableEncoder().Encode(&buf, export.Document{Title: "Contactos"}))
	assert.NotEmpty(t, buf.Bytes())
}
