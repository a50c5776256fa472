package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avelikanov/dui-admin/internal/middleware"
	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type CollectionHandler struct {
	collectionService CollectionServiceInterface
}

func NewCollectionHandler(collectionService CollectionServiceInterface) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// List returns the short view of the caller's current collections.
func (h *CollectionHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	collections, err := h.collectionService.List(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to list collections")
		return
	}
	if collections == nil {
		collections = []dto.CollectionShortResponse{}
	}

	_ = c.JSON(200, collections)
}

// Get returns the full view of a collection's current version.
func (h *CollectionHandler) Get(c *drift.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	collection, err := h.collectionService.GetCurrent(context.Background(), collectionID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, collection)
}

// GetByVersion returns the full view of one historical version.
func (h *CollectionHandler) GetByVersion(c *drift.Context) {
	if _, err := uuid.Parse(c.Param("collectionId")); err != nil {
		c.BadRequest("invalid collection id")
		return
	}
	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		c.BadRequest("invalid version id")
		return
	}

	collection, err := h.collectionService.GetByVersion(context.Background(), versionID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, collection)
}

// Export streams the current version as a downloadable JSON document named
// after the version id.
func (h *CollectionHandler) Export(c *drift.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	file, err := h.collectionService.Export(context.Background(), collectionID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	header := c.Response.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Access-Control-Expose-Headers", "Content-Disposition")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename+".json"))
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write(file.Content)
}

// History returns every version of a collection, oldest first. An unknown
// collection yields an empty list rather than an error.
func (h *CollectionHandler) History(c *drift.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	history, err := h.collectionService.History(context.Background(), collectionID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	if history == nil {
		history = []dto.CollectionHistoryResponse{}
	}

	_ = c.JSON(200, history)
}

func (h *CollectionHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.SaveCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	collection, err := h.collectionService.Create(context.Background(), userID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, collection)
}

func (h *CollectionHandler) Edit(c *drift.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	var req dto.SaveCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	collection, err := h.collectionService.Edit(context.Background(), collectionID, req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, collection)
}

// Delete removes a collection with its whole history. Succeeds whether or
// not anything existed.
func (h *CollectionHandler) Delete(c *drift.Context) {
	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	if err := h.collectionService.Delete(context.Background(), collectionID); err != nil {
		c.InternalServerError("failed to delete collection")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "collection deleted"})
}

func (h *CollectionHandler) respondServiceError(c *drift.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCollectionNotFound):
		respondError(c, 404, "COLLECTION_NOT_FOUND", "collection not found")
	case errors.Is(err, services.ErrTitleConflict):
		respondError(c, 409, "COLLECTION_TITLE_ALREADY_EXISTS", "collection with this title already exists")
	case errors.Is(err, services.ErrEditConflict):
		respondError(c, 409, "COLLECTION_EDIT_CONFLICT", "collection was modified by another user")
	case errors.Is(err, services.ErrCreateFailed):
		respondError(c, 500, "COLLECTION_CREATE_ERROR", "failed to create collection")
	case errors.Is(err, services.ErrExportFailed):
		respondError(c, 500, "COLLECTION_EXPORT_ERROR", "failed to export collection")
	default:
		c.InternalServerError("internal error")
	}
}
