package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CollectionVersion is one immutable snapshot row of a collection. All rows
// sharing CollectionID form the collection's history; at most one of them is
// current. For the first version of a new collection VersionID and
// CollectionID are equal.
type CollectionVersion struct {
	VersionID    uuid.UUID       `json:"version_id"`
	CollectionID uuid.UUID       `json:"collection_id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Title        string          `json:"title"`
	Pages        json.RawMessage `json:"pages"`
	Mocks        json.RawMessage `json:"mocks"`
	Config       json.RawMessage `json:"config"`
	IsCurrent    bool            `json:"is_current"`
	CreatedAt    time.Time       `json:"created_at"`
}
