package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type TemplateHandler struct {
	templateService TemplateServiceInterface
}

func NewTemplateHandler(templateService TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List returns the template catalog, optionally filtered by type. The filter
// body is optional.
func (h *TemplateHandler) List(c *drift.Context) {
	var filter dto.TemplateFilterRequest
	_ = c.BindJSON(&filter)

	templates, err := h.templateService.List(context.Background(), filter.Type)
	if err != nil {
		c.InternalServerError("failed to list templates")
		return
	}
	if templates == nil {
		templates = []dto.TemplateListEntry{}
	}

	_ = c.JSON(200, templates)
}

// GetPage returns the template's JSON instruction file.
func (h *TemplateHandler) GetPage(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	content, err := h.templateService.GetPage(context.Background(), templateID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	header := c.Response.Header()
	header.Set("Content-Type", "application/json")
	_, _ = c.Response.Write(content)
}

// GetImage returns the template's preview image as an attachment.
func (h *TemplateHandler) GetImage(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	filename, content, err := h.templateService.GetImage(context.Background(), templateID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	header := c.Response.Header()
	header.Set("Content-Type", "image/png")
	header.Set("Access-Control-Expose-Headers", "Content-Disposition")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write(content)
}

func (h *TemplateHandler) respondServiceError(c *drift.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound):
		respondError(c, 404, "TEMPLATE_NOT_FOUND", "template not found")
	case errors.Is(err, services.ErrTemplatePageNotFound):
		respondError(c, 404, "TEMPLATE_PAGE_NOT_FOUND", "template page file not found")
	case errors.Is(err, services.ErrTemplateImageNotFound):
		respondError(c, 404, "TEMPLATE_IMAGE_NOT_FOUND", "template image file not found")
	default:
		c.InternalServerError("internal error")
	}
}
