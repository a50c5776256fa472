package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Page is a named JSON instruction document served to the UI runtime.
type Page struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Instructions json.RawMessage `json:"instructions"`
	Author       string          `json:"author"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
