package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
	"github.com/jhoicas/ventas-admin-api/internal/infrastructure/encoder"
)

var scope = table.Scope{Feature: "ventas", UserID: "u-1", ClienteID: "c-1"}

type stubTables struct {
	prep *usecase.Prepared
	err  error
	got  []string
}

func (s *stubTables) Prepare(_ context.Context, _ table.Scope, search, sort, dir string) (*usecase.Prepared, error) {
	s.got = []string{search, sort, dir}
	return s.prep, s.err
}

func prepared() *usecase.Prepared {
	base := []table.Column{
		{ID: "nombre", Label: "Nombre", Field: "nombre"},
		{ID: "email", Label: "Email", Field: "email"},
		{ID: "monto", Label: "Monto", Field: "monto", Type: table.TypeMoney},
	}
	cat := table.NewCatalog(base, []table.Column{table.CustomColumn("sede", "Sede", "text")}, nil)
	row := func(id, nombre string) table.Row {
		return table.Row{ID: id, Fixed: map[string]table.Value{
			"nombre": table.String(nombre),
			"email":  table.String(strings.ToLower(nombre) + "@x.co"),
		}, Dynamic: map[string]table.Value{"sede": table.String("Norte")}}
	}
	return &usecase.Prepared{
		TableState: usecase.TableState{
			Feature: table.Feature{Name: "ventas", Entidad: "ventas", Title: "Ventas"},
			Cliente: &entity.Cliente{ID: "c-1", Nombre: "Universidad Central"},
			Catalog: cat,
			Prefs: table.Preferences{
				Visible: []string{"nombre", "campos_adicionales.sede"},
				Order:   []string{"campos_adicionales.sede", "nombre", "email", "monto"},
			},
			Fetched: true,
		},
		Rows: []table.Row{row("1", "Ana"), row("2", "Luis")},
	}
}

func newExport(tables export.TablePreparer) *export.ExportUseCase {
	return export.NewExportUseCase(tables, encoder.CSV{}, encoder.HTMLXLS{}, encoder.XLSX{})
}

func TestExport_CSVColumnasVisibles(t *testing.T) {
	tables := &stubTables{prep: prepared()}

	f, err := newExport(tables).Export(context.Background(), scope, dto.ExportQuery{Search: "an", Sort: "nombre", Dir: "desc"})
	require.NoError(t, err)

	assert.Equal(t, []string{"an", "nombre", "desc"}, tables.got)
	assert.Equal(t, "ventas_universidad_central_personalizado.csv", f.Name)
	assert.Equal(t, "text/csv; charset=utf-8", f.ContentType)
	assert.Equal(t, "Sede,Nombre\nNorte,Ana\nNorte,Luis\n", string(f.Body))
}

func TestExport_SubconjuntoEnOrdenDelLlamador(t *testing.T) {
	f, err := newExport(&stubTables{prep: prepared()}).Export(context.Background(), scope,
		dto.ExportQuery{Format: "CSV", Columns: "email, desconocida,nombre,email"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(f.Body)), "\n")
	assert.Equal(t, "Email,Nombre", lines[0])
	assert.Equal(t, "ana@x.co,Ana", lines[1])
}

func TestExport_FormatoDesconocido(t *testing.T) {
	_, err := newExport(&stubTables{prep: prepared()}).Export(context.Background(), scope, dto.ExportQuery{Format: "docx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_ColumnasInvalidas(t *testing.T) {
	_, err := newExport(&stubTables{prep: prepared()}).Export(context.Background(), scope, dto.ExportQuery{Columns: "x,y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_PropagaErrorDeTabla(t *testing.T) {
	_, err := newExport(&stubTables{err: domain.ErrNotFound}).Export(context.Background(), scope, dto.ExportQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_XLSConExtension(t *testing.T) {
	f, err := newExport(&stubTables{prep: prepared()}).Export(context.Background(), scope, dto.ExportQuery{Format: "xls"})
	require.NoError(t, err)
	assert.Equal(t, "ventas_universidad_central_personalizado.xls", f.Name)
	assert.Equal(t, "application/vnd.ms-excel", f.ContentType)
	assert.Contains(t, string(f.Body), "<table>")
}

func TestFilename_SinNombreUsaID(t *testing.T) {
	assert.Equal(t, "contactos_c-9_personalizado.csv",
		export.Filename("contactos", &entity.Cliente{ID: "c-9", Nombre: "  "}, "csv"))
	assert.Equal(t, "contactos_c-9_personalizado.csv",
		export.Filename("contactos", &entity.Cliente{ID: "c-9", Nombre: "¿ / ?"}, "csv"))
}

func TestFilename_SoloASCII(t *testing.T) {
	got := export.Filename("ventas", &entity.Cliente{ID: "c-1", Nombre: `U de Bogotá / Sede "Norte"`}, "csv")
	assert.Equal(t, "ventas_u_de_bogota_sede_norte_personalizado.csv", got)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "universidad_central", export.Slug("Universidad Central"))
	assert.Equal(t, "colegio_san_jose", export.Slug("Colegio 'San José'"))
	assert.Equal(t, "nino_cia_2024", export.Slug("  Niño & Cía. 2024 "))
	assert.Equal(t, "", export.Slug("¿?"))
}

func TestExport_SinColumnasVisiblesEsInvalido(t *testing.T) {
	prep := prepared()
	prep.Prefs.Visible = []string{}

	_, err := newExport(&stubTables{prep: prep}).Export(context.Background(), scope, dto.ExportQuery{Format: "csv"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_XLSXClienteConComillas(t *testing.T) {
	prep := prepared()
	prep.Cliente = &entity.Cliente{ID: "c-1", Nombre: "Colegio 'San José'"}

	f, err := newExport(&stubTables{prep: prep}).Export(context.Background(), scope, dto.ExportQuery{Format: "xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "ventas_colegio_san_jose_personalizado.xlsx", f.Name)
	assert.NotEmpty(t, f.Body)
}

type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (m *memStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	if m.err != nil {
		return m.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = b
	return nil
}

func (m *memStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func TestReport_GuardaTodasLasColumnas(t *testing.T) {
	store := &memStorage{files: map[string][]byte{}}
	tables := &stubTables{prep: prepared()}
	uc := export.NewReportUseCase(tables, encoder.CSV{}, store, "https://admin.example.com/api/")

	res, err := uc.Generate(context.Background(), scope)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "", ""}, tables.got)
	assert.True(t, strings.HasPrefix(res.Path, "exports/c-1/ventas_"), res.Path)
	assert.True(t, strings.HasSuffix(res.Path, ".csv"), res.Path)
	assert.Equal(t, "https://admin.example.com/api/"+res.Path, res.URL)

	body := string(store.files[res.Path])
	assert.True(t, strings.HasPrefix(body, "Nombre,Email,Monto,Sede\n"), body)

	file := strings.TrimPrefix(res.Path, "exports/c-1/")
	rc, contentType, err := uc.Open(context.Background(), "c-1", file)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "text/csv; charset=utf-8", contentType)
}

func TestReport_XLSXClienteConComillas(t *testing.T) {
	prep := prepared()
	prep.Cliente = &entity.Cliente{ID: "c-1", Nombre: "Colegio 'San José'"}
	store := &memStorage{files: map[string][]byte{}}
	uc := export.NewReportUseCase(&stubTables{prep: prep}, encoder.XLSX{}, store, "http://h/api")

	res, err := uc.Generate(context.Background(), scope)
	require.NoError(t, err)
	assert.NotEmpty(t, store.files[res.Path])
}

func TestReport_FalloDeAlmacenamiento(t *testing.T) {
	store := &memStorage{err: errors.New("disco lleno")}
	uc := export.NewReportUseCase(&stubTables{prep: prepared()}, encoder.XLSX{}, store, "http://h/api")

	_, err := uc.Generate(context.Background(), scope)
	assert.ErrorIs(t, err, domain.ErrReportFailed)
}

func TestReport_OpenRechazaRutas(t *testing.T) {
	uc := export.NewReportUseCase(&stubTables{}, encoder.XLSX{}, &memStorage{files: map[string][]byte{}}, "http://h/api")

	for _, name := range []string{"", "../x.xlsx", "a/b.xlsx", ".oculto"} {
		_, _, err := uc.Open(context.Background(), "c-1", name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
	_, _, err := uc.Open(context.Background(), "c-1", "nada.xlsx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
