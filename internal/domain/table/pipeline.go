package table

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Direction sentido de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection interpreta "desc" (sin distinguir mayúsculas); cualquier otro valor es Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// Filter devuelve las filas en las que alguno de los campos contiene term,
// sin distinguir mayúsculas/minúsculas. Un término vacío devuelve todas las filas.
func Filter(rows []Row, term string, fields []string) []Row {
	out := make([]Row, 0, len(rows))
	if term == "" {
		return append(out, rows...)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, r := range rows {
		for _, f := range fields {
			if strings.Contains(fold.String(r.Field(f).Text()), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Sort ordena de forma estable por el valor crudo de la columna.
// Las filas con valor nulo no son comparables: conservan su posición
// y su orden relativo; el resto se ordena en los lugares restantes.
func Sort(rows []Row, col Column, dir Direction) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	slots := make([]int, 0, len(out))
	for i, r := range out {
		if !col.Value(r).IsNull() {
			slots = append(slots, i)
		}
	}
	sorted := make([]Row, len(slots))
	for j, i := range slots {
		sorted[j] = out[i]
	}
	slices.SortStableFunc(sorted, func(a, b Row) int {
		c := compare(col.Value(a), col.Value(b))
		if dir == Desc {
			return -c
		}
		return c
	})
	for j, i := range slots {
		out[i] = sorted[j]
	}
	return out
}

// Page una página de resultados.
type Page struct {
	Rows       []Row
	Number     int
	Size       int
	Total      int
	TotalPages int
}

// Paginate corta las filas en páginas de size elementos. number es 1-based y se
// ajusta al rango [1, TotalPages]. size <= 0 devuelve todo en una página.
func Paginate(rows []Row, number, size int) Page {
	total := len(rows)
	if size <= 0 {
		size = total
		if size == 0 {
			size = 1
		}
	}
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	start := (number - 1) * size
	end := min(start+size, total)
	page := make([]Row, end-start)
	copy(page, rows[start:end])
	return Page{Rows: page, Number: number, Size: size, Total: total, TotalPages: totalPages}
}

// OrderedColumns recorre order y devuelve las columnas del catálogo que aparecen en él,
// en ese orden y sin repetir. IDs desconocidos se ignoran.
func OrderedColumns(c *Catalog, order []string) []Column {
	out := make([]Column, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			continue
		}
		col, ok := c.Lookup(id)
		if !ok {
			continue
		}
		seen[id] = true
		out = append(out, col)
	}
	return out
}

// RenderColumns restringe las columnas ordenadas a las visibles.
func RenderColumns(ordered []Column, visible []string) []Column {
	show := make(map[string]bool, len(visible))
	for _, id := range visible {
		show[id] = true
	}
	out := make([]Column, 0, len(ordered))
	for _, col := range ordered {
		if show[col.ID] {
			out = append(out, col)
		}
	}
	return out
}

// Project aplica OrderedColumns y RenderColumns con unas preferencias.
func Project(c *Catalog, p Preferences) (ordered, render []Column) {
	ordered = OrderedColumns(c, p.Order)
	return ordered, RenderColumns(ordered, p.Visible)
}
