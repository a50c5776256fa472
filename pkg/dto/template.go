package dto

import "github.com/google/uuid"

// TemplateFilterRequest narrows the template listing; an empty/missing type
// returns everything.
type TemplateFilterRequest struct {
	Type string `json:"type,omitempty"`
}

type TemplateListEntry struct {
	UUID     uuid.UUID `json:"uuid"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
}
