package encoder

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31

	sheetNameEdges = "' \t"
)

var sheetNameCleaner = strings.NewReplacer(
	"[", " ", "]", " ", ":", " ", "*", " ", "?", " ", "/", " ", `\`, " ",
)

// XLSX libro OOXML real. Columnas numéricas y de dinero se escriben como números.
type XLSX struct{}

var _ export.Encoder = XLSX{}

func (XLSX) Format() string { return "xlsx" }
func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSX) Extension() string { return "xlsx" }

// Encode escribe una hoja con encabezado en negrita y una fila por registro.
func (XLSX) Encode(w io.Writer, doc export.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(doc.Title)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("xlsx: hoja: %w", err)
	}

	headers := make([]any, len(doc.Columns))
	for i, col := range doc.Columns {
		headers[i] = col.Label
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if len(doc.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("xlsx: estilo: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(doc.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("xlsx: estilo: %w", err)
		}
	}

	for i, r := range doc.Rows {
		values := make([]any, len(doc.Columns))
		for j, col := range doc.Columns {
			values[j] = cellValue(col, r)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}
	return f.Write(w)
}

func cellValue(col table.Column, r table.Row) any {
	if !col.IsCustom && (col.Type == table.TypeMoney || col.Type == table.TypeNumber) {
		if d, ok := col.Value(r).Decimal(); ok {
			n, _ := d.Float64()
			return n
		}
	}
	return col.Text(r)
}

// SheetName nombre de hoja válido para Excel: sin []:*?/\, de máximo 31 caracteres
// y sin comilla simple al inicio ni al final.
func SheetName(title string) string {
	name := strings.Trim(sheetNameCleaner.Replace(title), sheetNameEdges)
	if r := []rune(name); len(r) > maxSheetName {
		name = strings.Trim(string(r[:maxSheetName]), sheetNameEdges)
	}
	if name == "" {
		return "Datos"
	}
	return name
}
