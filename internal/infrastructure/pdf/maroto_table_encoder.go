// Package pdf genera el reporte PDF de una tabla exportada.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la tabla        │  Fecha de generación     │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por columna exportada                     │
//	│  ──────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"io"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Encoder ───────────────────────────────────────────────────────────────────

// MarotoTableEncoder implementa export.Encoder usando Maroto v2.
type MarotoTableEncoder struct {
	now func() time.Time
}

var _ export.Encoder = (*MarotoTableEncoder)(nil)

// NewMarotoTableEncoder construye el encoder.
func NewMarotoTableEncoder() *MarotoTableEncoder {
	return &MarotoTableEncoder{now: time.Now}
}

func (e *MarotoTableEncoder) Format() string      { return "pdf" }
func (e *MarotoTableEncoder) ContentType() string { return "application/pdf" }
func (e *MarotoTableEncoder) Extension() string   { return "pdf" }

// Encode genera el PDF y lo escribe en w.
func (e *MarotoTableEncoder) Encode(w io.Writer, doc export.Document) error {
	view := doc.View()
	grid := max(len(view.Columns), 1)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Title, e.now(), grid))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(view.Columns) > 0 {
		m.AddRows(tableHeaderRow(view.Columns))
	}
	if view.Placeholder != nil {
		m.AddRows(placeholderRow(view.Placeholder, grid))
	} else {
		m.AddRows(tableDetailRows(view.Cells)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(doc.Rows), grid))

	out, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	_, err = w.Write(out.GetBytes())
	return err
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der) sobre todo el ancho.
func headerRow(title string, at time.Time, grid int) core.Row {
	return row.New(12).Add(
		col.New(grid).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados con fondo azul.
func tableHeaderRow(cols []table.Column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(1).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(c),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por registro, con franjas alternas.
func tableDetailRows(lines [][]string) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, cells := range lines {
		cols := make([]core.Col, 0, len(cells))
		for _, c := range cells {
			cols = append(cols, col.New(1).Add(text.New(c, props.Text{
				Size: 7.5, Align: align.Left, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func placeholderRow(p *table.Placeholder, grid int) core.Row {
	return row.New(10).Add(col.New(grid).Add(
		text.New(p.Text, props.Text{
			Style: fontstyle.Italic, Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

func footerRow(total, grid int) core.Row {
	return row.New(8).Add(col.New(grid).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func columnAlign(c table.Column) align.Type {
	if !c.IsCustom && (c.Type == table.TypeMoney || c.Type == table.TypeNumber) {
		return align.Right
	}
	return align.Left
}
