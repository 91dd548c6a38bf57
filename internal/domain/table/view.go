package table

// NoResults texto de la fila de reemplazo cuando no hay nada que mostrar.
const NoResults = "No se encontraron resultados"

// Placeholder fila única que reemplaza a la tabla vacía.
type Placeholder struct {
	ColSpan int    `json:"colspan"`
	Text    string `json:"text"`
}

// View tabla lista para dibujar: encabezados y celdas de texto.
type View struct {
	Columns     []Column
	Cells       [][]string
	Placeholder *Placeholder
}

// BuildView aplica los accessors de las columnas a las filas.
// Sin columnas o sin filas la vista lleva un Placeholder (colspan mínimo 1)
// en lugar de una tabla de cero columnas o cero filas.
func BuildView(cols []Column, rows []Row) View {
	v := View{Columns: cols, Cells: make([][]string, 0, len(rows))}
	if len(cols) == 0 || len(rows) == 0 {
		span := max(len(cols), 1)
		v.Placeholder = &Placeholder{ColSpan: span, Text: NoResults}
		return v
	}
	for _, r := range rows {
		line := make([]string, len(cols))
		for i, col := range cols {
			line[i] = col.Text(r)
		}
		v.Cells = append(v.Cells, line)
	}
	return v
}

// Headers etiquetas de las columnas de la vista.
func (v View) Headers() []string {
	out := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		out[i] = col.Label
	}
	return out
}
