package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/ettle/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// DefaultFormat formato cuando la petición no indica ninguno.
const DefaultFormat = "csv"

// File archivo generado listo para enviar.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ExportUseCase exporta la tabla tal como la ve el usuario: filtro y orden actuales,
// todas las filas, columnas visibles o el subconjunto pedido.
type ExportUseCase struct {
	tables   TablePreparer
	encoders map[string]Encoder
}

// NewExportUseCase construye el caso de uso con los encoders disponibles.
func NewExportUseCase(tables TablePreparer, encoders ...Encoder) *ExportUseCase {
	m := make(map[string]Encoder, len(encoders))
	for _, e := range encoders {
		m[e.Format()] = e
	}
	return &ExportUseCase{tables: tables, encoders: m}
}

// Export genera el archivo. Formato desconocido, columnas inválidas o ninguna columna
// visible → domain.ErrInvalidInput.
func (uc *ExportUseCase) Export(ctx context.Context, scope table.Scope, q dto.ExportQuery) (*File, error) {
	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = DefaultFormat
	}
	enc, ok := uc.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, q.Format)
	}
	prep, err := uc.tables.Prepare(ctx, scope, q.Search, q.Sort, q.Dir)
	if err != nil {
		return nil, err
	}
	cols := prep.Render()
	if strings.TrimSpace(q.Columns) != "" {
		cols = SelectColumns(prep.Catalog, strings.Split(q.Columns, ","))
		if len(cols) == 0 {
			return nil, fmt.Errorf("%w: ninguna columna válida en columnas", domain.ErrInvalidInput)
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no hay columnas visibles para exportar", domain.ErrInvalidInput)
	}
	doc := Document{
		Title:   prep.Feature.Title + " - " + prep.Cliente.Nombre,
		Columns: cols,
		Rows:    prep.Rows,
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, doc); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	return &File{
		Name:        Filename(prep.Feature.Entidad, prep.Cliente, enc.Extension()),
		ContentType: enc.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// SelectColumns columnas del catálogo en el orden pedido, sin repetir; IDs desconocidos se ignoran.
func SelectColumns(c *table.Catalog, ids []string) []table.Column {
	trimmed := make([]string, 0, len(ids))
	for _, id := range ids {
		trimmed = append(trimmed, strings.TrimSpace(id))
	}
	return table.OrderedColumns(c, trimmed)
}

// Filename <entidad>_<cliente>_personalizado.<ext>; el cliente va en snake_case ASCII
// ([a-z0-9_]) o, si no queda nada utilizable, su ID.
func Filename(entidad string, cliente *entity.Cliente, ext string) string {
	tenant := ""
	if cliente != nil {
		tenant = Slug(cliente.Nombre)
		if tenant == "" {
			tenant = cliente.ID
		}
	}
	return fmt.Sprintf("%s_%s_personalizado.%s", entidad, tenant, ext)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug snake_case sin tildes; cualquier carácter fuera de [a-z0-9] se vuelve "_" y los
// "_" repetidos o en los bordes se eliminan.
func Slug(s string) string {
	snake := strcase.ToSnake(strings.TrimSpace(s))
	if plain, _, err := transform.String(stripMarks, snake); err == nil {
		snake = plain
	}
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(snake) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			continue
		}
		sep = true
	}
	return b.String()
}
