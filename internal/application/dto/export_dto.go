package dto

// ExportQuery parámetros de GET .../exportar.
// Columns (columnas=a,b) elige un subconjunto en ese orden; vacío usa las columnas visibles.
type ExportQuery struct {
	Format  string `query:"formato"` // csv | xls | xlsx | pdf
	Columns string `query:"columnas"`
	Search  string `query:"q"`
	Sort    string `query:"sort"`
	Dir     string `query:"dir"`
}

// ReportResponse respuesta de POST .../reporte: ruta relativa del archivo y URL de descarga.
type ReportResponse struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}
