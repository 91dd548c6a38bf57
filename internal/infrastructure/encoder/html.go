package encoder

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain/table"
)

// HTMLXLS documento HTML con una sola <table>, servido como .xls para que la hoja de
// cálculo lo importe. No es un binario de Excel real (para eso está XLSX).
type HTMLXLS struct{}

var _ export.Encoder = HTMLXLS{}

func (HTMLXLS) Format() string      { return "xls" }
func (HTMLXLS) ContentType() string { return "application/vnd.ms-excel" }
func (HTMLXLS) Extension() string   { return "xls" }

// Encode escribe el documento HTML completo.
func (HTMLXLS) Encode(w io.Writer, doc export.Document) error {
	d := etree.NewDocument()
	html := d.CreateElement("html")
	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	if doc.Title != "" {
		head.CreateElement("title").SetText(doc.Title)
	}
	body := html.CreateElement("body")
	appendTable(body, doc.View())
	_, err := d.WriteTo(w)
	return err
}

// WriteTable escribe solo el fragmento <table> de la vista (tabla paginada en HTML).
func WriteTable(w io.Writer, v table.View) error {
	d := etree.NewDocument()
	appendTable(&d.Element, v)
	_, err := d.WriteTo(w)
	return err
}

func appendTable(parent *etree.Element, v table.View) {
	tbl := parent.CreateElement("table")
	if len(v.Columns) > 0 {
		tr := tbl.CreateElement("thead").CreateElement("tr")
		for _, col := range v.Columns {
			th := tr.CreateElement("th")
			th.CreateAttr("data-column", col.ID)
			th.SetText(col.Label)
		}
	}
	tbody := tbl.CreateElement("tbody")
	if v.Placeholder != nil {
		td := tbody.CreateElement("tr").CreateElement("td")
		td.CreateAttr("colspan", strconv.Itoa(v.Placeholder.ColSpan))
		td.SetText(v.Placeholder.Text)
		return
	}
	for _, cells := range v.Cells {
		tr := tbody.CreateElement("tr")
		for _, c := range cells {
			tr.CreateElement("td").SetText(c)
		}
	}
}
