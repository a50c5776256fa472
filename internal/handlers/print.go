package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/avelikanov/dui-admin/internal/printclient"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	// printFileName is the name given to template files returned inline;
	// the print-service does not keep original filenames.
	printFileName = "file.bin"

	// limitSchema caps the placeholder rows shown in the schema preview.
	limitSchema = 5
)

// PrintHandler proxies print-form template operations to the external print
// service.
type PrintHandler struct {
	printClient PrintClientInterface
}

func NewPrintHandler(printClient PrintClientInterface) *PrintHandler {
	return &PrintHandler{printClient: printClient}
}

// Filter returns every remote template as a table response.
func (h *PrintHandler) Filter(c *drift.Context) {
	found, err := h.printClient.FindTemplates(context.Background())
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}

	records := make([]map[string]any, 0, len(found.Templates))
	for _, t := range found.Templates {
		records = append(records, map[string]any{
			"templateId":    t.TemplateID,
			"templateCode":  t.TemplateCode,
			"templateGroup": t.TemplateGroup,
			"description":   t.Description,
			"schema":        t.Schema,
			"creationDate":  t.CreationDate,
			"updateDate":    t.UpdateDate,
		})
	}

	_ = c.JSON(200, dto.TableResponse{
		Total:   int(found.Page.TotalNumberOfRows),
		Records: records,
	})
}

// Get returns one template's metadata together with its file as base64.
func (h *PrintHandler) Get(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	ctx := context.Background()

	meta, err := h.findTemplate(ctx, templateID)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}
	if meta == nil {
		respondError(c, 404, "PRINT_TEMPLATE_NOT_FOUND", "print template not found")
		return
	}

	content, err := h.printClient.DownloadTemplate(ctx, templateID)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}

	_ = c.JSON(200, dto.PrintTemplateResponse{
		TemplateID:   meta.TemplateID.String(),
		TemplateCode: meta.TemplateCode,
		Description:  meta.Description,
		File: dto.Base64File{
			ID:      meta.TemplateID.String(),
			Name:    printFileName,
			Content: base64.StdEncoding.EncodeToString(content),
		},
	})
}

// Schema returns the template's placeholder fields as a table response,
// ordered by field name and capped at limitSchema rows.
func (h *PrintHandler) Schema(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	meta, err := h.findTemplate(context.Background(), templateID)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}
	if meta == nil {
		respondError(c, 404, "PRINT_TEMPLATE_NOT_FOUND", "print template not found")
		return
	}

	names := make([]string, 0, len(meta.Schema))
	for name := range meta.Schema {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > limitSchema {
		names = names[:limitSchema]
	}

	records := make([]map[string]any, 0, len(names))
	for _, name := range names {
		record := map[string]any{}
		if err := json.Unmarshal(meta.Schema[name], &record); err != nil {
			record = map[string]any{}
		}
		record["name"] = name
		records = append(records, record)
	}

	_ = c.JSON(200, dto.TableResponse{
		Total:   len(meta.Schema),
		Records: records,
	})
}

// Create registers a new template, forwarding the base64 file as multipart.
func (h *PrintHandler) Create(c *drift.Context) {
	var req dto.PrintTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.TemplateCode == "" {
		c.BadRequest("template_code is required")
		return
	}
	if req.File.Content == "" {
		c.BadRequest("file content is required")
		return
	}

	filePath, err := printclient.WriteTempFile(req.File.Content, req.File.Name)
	if err != nil {
		c.BadRequest("invalid file content")
		return
	}
	defer os.Remove(filePath)

	err = h.printClient.CreateTemplate(context.Background(), printclient.CreateTemplateRequest{
		TemplateCode: req.TemplateCode,
		Description:  req.Description,
	}, filePath)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}

	_ = c.JSON(201, map[string]string{"message": "print template created"})
}

// Update replaces an existing template's file and description.
func (h *PrintHandler) Update(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	var req dto.PrintTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.File.Content == "" {
		c.BadRequest("file content is required")
		return
	}

	filePath, err := printclient.WriteTempFile(req.File.Content, req.File.Name)
	if err != nil {
		c.BadRequest("invalid file content")
		return
	}
	defer os.Remove(filePath)

	err = h.printClient.UpdateTemplate(context.Background(), printclient.UpdateTemplateRequest{
		TemplateID:  templateID,
		Description: req.Description,
	}, filePath)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "print template updated"})
}

func (h *PrintHandler) Delete(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	if err := h.printClient.DeleteTemplate(context.Background(), templateID); err != nil {
		h.respondRemoteError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "print template deleted"})
}

// Download streams the raw template file.
func (h *PrintHandler) Download(c *drift.Context) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	content, err := h.printClient.DownloadTemplate(context.Background(), templateID)
	if err != nil {
		h.respondRemoteError(c, err)
		return
	}

	header := c.Response.Header()
	header.Set("Content-Type", "application/octet-stream")
	header.Set("Access-Control-Expose-Headers", "Content-Disposition")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", printFileName))
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write(content)
}

// findTemplate looks a template up in the remote catalog. Returns nil when
// the id is unknown.
func (h *PrintHandler) findTemplate(ctx context.Context, templateID uuid.UUID) (*printclient.TemplateMeta, error) {
	found, err := h.printClient.FindTemplates(ctx)
	if err != nil {
		return nil, err
	}
	for i := range found.Templates {
		if found.Templates[i].TemplateID == templateID {
			return &found.Templates[i], nil
		}
	}
	return nil, nil
}

func (h *PrintHandler) respondRemoteError(c *drift.Context, err error) {
	log.Printf("print-service call failed: %v", err)
	respondError(c, 502, "PRINT_SERVICE_ERROR", "print service is unavailable")
}
