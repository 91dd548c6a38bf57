package table

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de texto de los valores de fecha.
const DateLayout = "2006-01-02"

// Kind tipo de un Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value valor tipado de una celda: String | Number | Date | null.
type Value struct {
	kind Kind
	str  string
	num  decimal.Decimal
	date time.Time
}

// Null valor ausente.
func Null() Value { return Value{} }

// String valor de texto.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number valor numérico.
func Number(d decimal.Decimal) Value { return Value{kind: KindNumber, num: d} }

// Date valor de fecha. La fecha cero se considera ausente.
func Date(t time.Time) Value {
	if t.IsZero() {
		return Null()
	}
	return Value{kind: KindDate, date: t}
}

// ValueOf convierte un valor decodificado de JSON (o un tipo Go básico) en Value.
// Booleanos, objetos y listas se convierten a texto.
func ValueOf(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return String(x.String())
		}
		return Number(d)
	case float64:
		return Number(decimal.NewFromFloat(x))
	case int:
		return Number(decimal.NewFromInt(int64(x)))
	case int64:
		return Number(decimal.NewFromInt(x))
	case decimal.Decimal:
		return Number(x)
	case time.Time:
		return Date(x)
	case bool:
		if x {
			return String("true")
		}
		return String("false")
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return String(fmt.Sprint(x))
		}
		return String(string(b))
	}
}

// Kind devuelve el tipo del valor.
func (v Value) Kind() Kind { return v.kind }

// IsNull indica si el valor está ausente.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text representación de texto sin formato adicional. Null → "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindDate:
		return v.date.Format(DateLayout)
	default:
		return ""
	}
}

// Decimal devuelve el número si el valor es numérico.
func (v Value) Decimal() (decimal.Decimal, bool) {
	if v.kind != KindNumber {
		return decimal.Zero, false
	}
	return v.num, true
}

// Time devuelve la fecha si el valor es de fecha.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindDate {
		return time.Time{}, false
	}
	return v.date, true
}

// MarshalJSON serializa el valor con su tipo natural en JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindDate:
		return json.Marshal(v.date.Format(DateLayout))
	default:
		return []byte("null"), nil
	}
}

// compare ordena dos valores no nulos. Valores de distinto tipo se ordenan por tipo.
func compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindNumber:
		return a.num.Cmp(b.num)
	case KindDate:
		return a.date.Compare(b.date)
	default:
		return 0
	}
}
