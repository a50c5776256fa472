package handlers

import (
	"context"
	"errors"

	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PageHandler struct {
	pageService PageServiceInterface
}

func NewPageHandler(pageService PageServiceInterface) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// Get returns the full page document for a route name.
func (h *PageHandler) Get(c *drift.Context) {
	name := c.QueryParam("pageName")
	if name == "" {
		c.BadRequest("pageName is required")
		return
	}

	page, err := h.pageService.GetByName(context.Background(), name)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			respondError(c, 404, "PAGE_NOT_FOUND", "page not found")
			return
		}
		c.InternalServerError("failed to get page")
		return
	}

	_ = c.JSON(200, dto.PageResponse{
		ID:           page.ID,
		Name:         page.Name,
		Title:        page.Title,
		Instructions: page.Instructions,
		Author:       page.Author,
		UpdatedAt:    page.UpdatedAt,
	})
}

// GetInstructions returns only the page's JSON instruction document.
func (h *PageHandler) GetInstructions(c *drift.Context) {
	name := c.QueryParam("pageName")
	if name == "" {
		c.BadRequest("pageName is required")
		return
	}

	page, err := h.pageService.GetByName(context.Background(), name)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			respondError(c, 404, "PAGE_NOT_FOUND", "page not found")
			return
		}
		c.InternalServerError("failed to get page")
		return
	}

	header := c.Response.Header()
	header.Set("Content-Type", "application/json")
	_, _ = c.Response.Write(page.Instructions)
}
