package models

import "github.com/google/uuid"

type TemplateType string

const (
	TemplateTypePage      TemplateType = "PAGE"
	TemplateTypeComponent TemplateType = "COMPONENT"
)

// Template is a catalog entry for prebuilt page/component boilerplate. The
// instruction and preview image files live on disk; the row only carries
// their filenames.
type Template struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	FilenamePage  string       `json:"filename_page"`
	FilenameImage string       `json:"filename_image"`
	Type          TemplateType `json:"type"`
}
