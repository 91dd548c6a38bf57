// Package export genera archivos descargables a partir de las tablas configurables:
// exportación del grid (csv, xls, xlsx, pdf) y reportes completos guardados en el servidor.
package export

import (
	"context"
	"io"

	"github.com/jhoicas/ventas-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// Document contenido a serializar: columnas elegidas y filas completas (sin paginar).
type Document struct {
	Title   string
	Columns []table.Column
	Rows    []table.Row
}

// View celdas de texto del documento (mismo formato que la tabla en pantalla).
func (d Document) View() table.View {
	return table.BuildView(d.Columns, d.Rows)
}

// Encoder serializa un Document en un formato.
type Encoder interface {
	Format() string // csv | xls | xlsx | pdf
	ContentType() string
	Extension() string
	Encode(w io.Writer, doc Document) error
}

// ReportStorage almacenamiento de reportes generados en el servidor (disco local o S3).
type ReportStorage interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// TablePreparer resuelve catálogo, preferencias y filas filtradas/ordenadas de una tabla.
type TablePreparer interface {
	Prepare(ctx context.Context, scope table.Scope, search, sort, dir string) (*usecase.Prepared, error)
}
