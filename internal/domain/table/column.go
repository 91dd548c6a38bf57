package table

// CustomPrefix espacio de nombres de las columnas de campos adicionales.
const CustomPrefix = "campos_adicionales."

// Tipos de columna base.
const (
	TypeText   = "text"
	TypeNumber = "number"
	TypeMoney  = "money"
	TypeDate   = "date"
)

// Column definición de una columna mostrable.
// Value y Text son el accessor: funciones puras sobre Row.
type Column struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Field    string `json:"field" yaml:"field"`
	Type     string `json:"type" yaml:"type"`
	IsCustom bool   `json:"is_custom" yaml:"-"`
}

// CustomColumn construye la columna de un campo adicional.
func CustomColumn(fieldID, label, typ string) Column {
	return Column{
		ID:       CustomPrefix + fieldID,
		Label:    label,
		Field:    fieldID,
		Type:     typ,
		IsCustom: true,
	}
}

// Value valor crudo de la columna para la fila (se usa para ordenar).
func (c Column) Value(r Row) Value {
	if c.IsCustom {
		return r.Custom(c.Field)
	}
	return r.Field(c.Field)
}

// Text valor de la columna listo para mostrar o exportar.
// Las columnas adicionales no se formatean: las fechas pasan tal cual.
func (c Column) Text(r Row) string {
	v := c.Value(r)
	if c.IsCustom {
		return v.Text()
	}
	switch c.Type {
	case TypeMoney:
		if d, ok := v.Decimal(); ok {
			return d.StringFixed(2)
		}
	case TypeDate:
		if t, ok := v.Time(); ok {
			return t.Format("02/01/2006")
		}
	}
	return v.Text()
}
