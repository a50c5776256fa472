package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PageResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Instructions json.RawMessage `json:"instructions"`
	Author       string          `json:"author,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
