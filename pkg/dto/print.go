package dto

// TableResponse is the generic table shape the admin UI's table component
// consumes: a total row count and one loosely typed record per row.
type TableResponse struct {
	Total   int              `json:"total"`
	Records []map[string]any `json:"records"`
}

// Base64File carries a file inline as base64 content.
type Base64File struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// PrintTemplateRequest creates a print-form template.
type PrintTemplateRequest struct {
	TemplateCode string     `json:"template_code"`
	Description  string     `json:"description"`
	File         Base64File `json:"file"`
}

// PrintTemplateResponse is a single print-form template with its file.
type PrintTemplateResponse struct {
	TemplateID   string     `json:"template_id,omitempty"`
	TemplateCode string     `json:"template_code,omitempty"`
	Description  string     `json:"description,omitempty"`
	File         Base64File `json:"file"`
}
