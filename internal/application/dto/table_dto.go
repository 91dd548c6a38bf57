package dto

// ColumnDTO columna del catálogo de una tabla.
type ColumnDTO struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	IsCustom bool   `json:"is_custom"`
}

// ColumnsResponse respuesta de GET /api/clientes/:clienteId/tablas/:tabla/columnas.
// Columns es el catálogo completo; Visible y Order son las preferencias efectivas del usuario.
type ColumnsResponse struct {
	Table              string      `json:"table"`
	Title              string      `json:"title"`
	Columns            []ColumnDTO `json:"columns"`
	Visible            []string    `json:"visible"`
	Order              []string    `json:"order"`
	CustomFieldsLoaded bool        `json:"custom_fields_loaded"` // false si el origen de campos falló
	PageSizes          []int       `json:"page_sizes"`
	DefaultPageSize    int         `json:"default_page_size"`
}

// PreferencesRequest cuerpo de PUT .../preferencias.
type PreferencesRequest struct {
	Visible []string `json:"visible"`
	Order   []string `json:"order"`
}

// PreferencesResponse preferencias guardadas.
type PreferencesResponse struct {
	Visible []string `json:"visible"`
	Order   []string `json:"order"`
}

// TableQuery parámetros de GET .../filas.
type TableQuery struct {
	Search   string `query:"q"`
	Sort     string `query:"sort"`
	Dir      string `query:"dir"` // asc | desc
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

// TableRowDTO fila ya proyectada: una celda por columna visible.
type TableRowDTO struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

// PlaceholderDTO fila única que se muestra cuando no hay columnas o filas.
type PlaceholderDTO struct {
	ColSpan int    `json:"colspan"`
	Text    string `json:"text"`
}

// TablePageDTO metadatos de paginación de la tabla.
type TablePageDTO struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Sizes      []int `json:"sizes"`
}

// TableViewResponse respuesta de GET .../filas.
type TableViewResponse struct {
	Table       string          `json:"table"`
	Columns     []ColumnDTO     `json:"columns"`
	Rows        []TableRowDTO   `json:"rows"`
	Placeholder *PlaceholderDTO `json:"placeholder,omitempty"`
	Page        TablePageDTO    `json:"page"`
	Search      string          `json:"q,omitempty"`
	Sort        string          `json:"sort,omitempty"`
	Dir         string          `json:"dir,omitempty"`
}
