package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SaveCollectionRequest is the body of both create (POST /collection) and
// edit (PUT /collection/:collectionId). Absent payload fields default to an
// empty list/map before they reach storage.
type SaveCollectionRequest struct {
	Title  string          `json:"title"`
	Pages  json.RawMessage `json:"pages,omitempty"`
	Mocks  json.RawMessage `json:"mocks,omitempty"`
	Config json.RawMessage `json:"config,omitempty"`
}

// CollectionResponse is the full view. UUID is the collection (group) id,
// not the id of the underlying version row.
type CollectionResponse struct {
	UUID   uuid.UUID       `json:"uuid"`
	Title  string          `json:"title"`
	Pages  json.RawMessage `json:"pages"`
	Mocks  json.RawMessage `json:"mocks"`
	Config json.RawMessage `json:"config"`
}

// CollectionShortResponse is the listing view: identifier and title only, so
// list calls never ship the JSON payloads.
type CollectionShortResponse struct {
	UUID  uuid.UUID `json:"uuid"`
	Title string    `json:"title"`
}

// CollectionHistoryResponse is one entry of a collection's history. Unlike
// the full view, UUID here is the version id.
type CollectionHistoryResponse struct {
	UUID         uuid.UUID       `json:"uuid"`
	Title        string          `json:"title"`
	CreationDate time.Time       `json:"creation_date"`
	IsCurrent    bool            `json:"is_current"`
	Pages        json.RawMessage `json:"pages"`
	Mocks        json.RawMessage `json:"mocks"`
	Config       json.RawMessage `json:"config"`
}
