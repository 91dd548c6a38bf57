package table

// Row registro opaco (venta o contacto) tal como lo ve la tabla.
// Fixed contiene los campos base; Dynamic los campos adicionales del cliente.
type Row struct {
	ID      string
	Fixed   map[string]Value
	Dynamic map[string]Value
}

// Field lee un campo base. Campos inexistentes devuelven Null.
func (r Row) Field(name string) Value {
	if v, ok := r.Fixed[name]; ok {
		return v
	}
	return Null()
}

// Custom lee un campo adicional; si no existe o es nulo usa el campo base del mismo nombre.
func (r Row) Custom(fieldID string) Value {
	if v, ok := r.Dynamic[fieldID]; ok && !v.IsNull() {
		return v
	}
	return r.Field(fieldID)
}
