// Package encoder serializa tablas exportadas: csv, html (pseudo-xls) y xlsx.
package encoder

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
)

var newlines = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// CSV encoder RFC 4180: encabezado más una línea por fila.
// Los saltos de línea dentro de una celda se reemplazan por espacios.
type CSV struct{}

var _ export.Encoder = CSV{}

func (CSV) Format() string      { return "csv" }
func (CSV) ContentType() string { return "text/csv; charset=utf-8" }
func (CSV) Extension() string   { return "csv" }

// Encode escribe el encabezado y todas las filas del documento.
func (CSV) Encode(w io.Writer, doc export.Document) error {
	cw := csv.NewWriter(w)
	headers := make([]string, len(doc.Columns))
	for i, col := range doc.Columns {
		headers[i] = Flatten(col.Label)
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(doc.Columns))
	for _, r := range doc.Rows {
		for i, col := range doc.Columns {
			record[i] = Flatten(col.Text(r))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Flatten reemplaza CR/LF por espacios.
func Flatten(s string) string {
	return newlines.Replace(s)
}
