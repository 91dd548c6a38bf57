package table

// Preferences columnas visibles y orden de izquierda a derecha elegidos por el usuario.
type Preferences struct {
	Visible []string `json:"visible"`
	Order   []string `json:"order"`
}

// Clone copia profunda.
func (p Preferences) Clone() Preferences {
	return Preferences{
		Visible: append([]string{}, p.Visible...),
		Order:   append([]string{}, p.Order...),
	}
}

// DefaultPreferences primeras n columnas base visibles y todo el catálogo en el orden.
func DefaultPreferences(c *Catalog, n int) Preferences {
	base := c.BaseIDs()
	if n > len(base) {
		n = len(base)
	}
	if n < 0 {
		n = 0
	}
	return Preferences{
		Visible: append([]string{}, base[:n]...),
		Order:   c.IDs(),
	}
}

// MergeOrder agrega al final del orden los ids que aún no aparecen en él,
// en el orden recibido. Nunca elimina ni reordena ids existentes.
// Devuelve true si agregó alguno.
func MergeOrder(p Preferences, ids []string) (Preferences, bool) {
	out := p.Clone()
	seen := make(map[string]bool, len(out.Order)+len(ids))
	for _, id := range out.Order {
		seen[id] = true
	}
	changed := false
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out.Order = append(out.Order, id)
		changed = true
	}
	return out, changed
}
