package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/avelikanov/dui-admin/internal/database"
	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreatePage creates a test page with default values
func (f *Fixtures) CreatePage(t *testing.T, opts ...PageOption) *models.Page {
	t.Helper()
	f.counter++

	page := &models.Page{
		Name:         fmt.Sprintf("page-%d", f.counter),
		Title:        fmt.Sprintf("Page %d", f.counter),
		Instructions: json.RawMessage(`{"components": []}`),
		Author:       "test",
	}

	for _, opt := range opts {
		opt(page)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO pages (name, title, instructions, author)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, title, instructions, author, updated_at
	`, page.Name, page.Title, page.Instructions, page.Author).Scan(
		&page.ID, &page.Name, &page.Title, &page.Instructions,
		&page.Author, &page.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}

	return page
}

// PageOption configures a test page
type PageOption func(*models.Page)

// WithPageName sets the page's route name
func WithPageName(name string) PageOption {
	return func(p *models.Page) {
		p.Name = name
	}
}

// WithInstructions sets the page's instruction document
func WithInstructions(instructions json.RawMessage) PageOption {
	return func(p *models.Page) {
		p.Instructions = instructions
	}
}

// CreateTemplate creates a test template catalog row
func (f *Fixtures) CreateTemplate(t *testing.T, opts ...TemplateOption) *models.Template {
	t.Helper()
	f.counter++

	tpl := &models.Template{
		ID:            uuid.New(),
		Title:         fmt.Sprintf("Template %d", f.counter),
		FilenamePage:  fmt.Sprintf("template-%d.json", f.counter),
		FilenameImage: fmt.Sprintf("template-%d.png", f.counter),
		Type:          models.TemplateTypePage,
	}

	for _, opt := range opts {
		opt(tpl)
	}

	ctx := context.Background()
	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO templates (id, title, filename_page, filename_image, type)
		VALUES ($1, $2, $3, $4, $5)
	`, tpl.ID, tpl.Title, tpl.FilenamePage, tpl.FilenameImage, tpl.Type)
	if err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	return tpl
}

// TemplateOption configures a test template
type TemplateOption func(*models.Template)

// WithTemplateType sets the template's type
func WithTemplateType(templateType models.TemplateType) TemplateOption {
	return func(tpl *models.Template) {
		tpl.Type = templateType
	}
}
