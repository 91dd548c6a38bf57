package table

// Feature configuración de una tabla configurable (ventas, contactos).
type Feature struct {
	Name            string   `yaml:"name"`
	Entidad         string   `yaml:"entidad"`
	Title           string   `yaml:"title"`
	BaseColumns     []Column `yaml:"base_columns"`
	DefaultVisible  int      `yaml:"default_visible"`
	SearchFields    []string `yaml:"search_fields"`
	PageSizes       []int    `yaml:"page_sizes"`
	DefaultPageSize int      `yaml:"default_page_size"`
	Reserved        []string `yaml:"reserved"`
}

// ReservedNames nombres que ningún campo adicional puede usar:
// IDs y campos de las columnas base más la lista reservada explícita.
func (f Feature) ReservedNames() []string {
	out := make([]string, 0, 2*len(f.BaseColumns)+len(f.Reserved))
	for _, col := range f.BaseColumns {
		out = append(out, col.ID, col.Field)
	}
	return append(out, f.Reserved...)
}

// PageSize devuelve n si pertenece al menú de tamaños; si no, el tamaño por defecto.
func (f Feature) PageSize(n int) int {
	for _, size := range f.PageSizes {
		if size == n {
			return n
		}
	}
	if f.DefaultPageSize > 0 {
		return f.DefaultPageSize
	}
	if len(f.PageSizes) > 0 {
		return f.PageSizes[0]
	}
	return 10
}
