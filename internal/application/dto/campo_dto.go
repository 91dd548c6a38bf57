package dto

// CreateCampoRequest entrada para definir un campo adicional.
type CreateCampoRequest struct {
	Entidad string   `json:"entidad" validate:"required,oneof=ventas contactos"`
	ID      string   `json:"id" validate:"required"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// FieldDTO definición de campo tal como la consume la tabla: {id, label, type, options?}.
type FieldDTO struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
	Entidad      string   `json:"entidad,omitempty"`
	DefinitionID string   `json:"definition_id,omitempty"`
}

// FieldsResponse respuesta de GET /api/clientes/:clienteId/campos.
type FieldsResponse struct {
	Fields []FieldDTO `json:"fields"`
}
