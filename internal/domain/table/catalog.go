package table

// Catalog conjunto ordenado de columnas (base ∪ adicionales) con IDs únicos.
type Catalog struct {
	columns []Column
	index   map[string]int
}

// NewCatalog combina las columnas base con las adicionales.
// Una columna adicional se descarta si su campo es un nombre reservado
// o si su ID ya existe en el catálogo. Las base duplicadas se ignoran (gana la primera).
func NewCatalog(base, custom []Column, reserved []string) *Catalog {
	c := &Catalog{
		columns: make([]Column, 0, len(base)+len(custom)),
		index:   make(map[string]int, len(base)+len(custom)),
	}
	for _, col := range base {
		col.IsCustom = false
		c.add(col)
	}
	blocked := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		blocked[name] = true
	}
	for _, col := range custom {
		if blocked[col.Field] || blocked[col.ID] {
			continue
		}
		col.IsCustom = true
		c.add(col)
	}
	return c
}

func (c *Catalog) add(col Column) {
	if col.ID == "" {
		return
	}
	if _, dup := c.index[col.ID]; dup {
		return
	}
	c.index[col.ID] = len(c.columns)
	c.columns = append(c.columns, col)
}

// Len número de columnas.
func (c *Catalog) Len() int { return len(c.columns) }

// Columns copia de las columnas en orden de catálogo.
func (c *Catalog) Columns() []Column {
	out := make([]Column, len(c.columns))
	copy(out, c.columns)
	return out
}

// IDs IDs de todas las columnas en orden de catálogo.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.columns))
	for _, col := range c.columns {
		out = append(out, col.ID)
	}
	return out
}

// BaseIDs IDs de las columnas base en orden de catálogo.
func (c *Catalog) BaseIDs() []string {
	out := make([]string, 0, len(c.columns))
	for _, col := range c.columns {
		if !col.IsCustom {
			out = append(out, col.ID)
		}
	}
	return out
}

// CustomIDs IDs de las columnas adicionales en orden de catálogo.
func (c *Catalog) CustomIDs() []string {
	var out []string
	for _, col := range c.columns {
		if col.IsCustom {
			out = append(out, col.ID)
		}
	}
	return out
}

// Lookup busca una columna por ID.
func (c *Catalog) Lookup(id string) (Column, bool) {
	i, ok := c.index[id]
	if !ok {
		return Column{}, false
	}
	return c.columns[i], true
}
