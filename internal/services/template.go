package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/avelikanov/dui-admin/internal/database"
	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrTemplateNotFound      = errors.New("template not found")
	ErrTemplatePageNotFound  = errors.New("template page file not found")
	ErrTemplateImageNotFound = errors.New("template image file not found")
)

// TemplateService serves the catalog of prebuilt page/component boilerplate.
// Catalog rows live in Postgres; the instruction and preview image files are
// packaged on disk under assetDir/page and assetDir/image.
//
// TODO: move the asset files into the database and add management endpoints.
type TemplateService struct {
	db       *database.DB
	assetDir string
}

func NewTemplateService(db *database.DB, assetDir string) *TemplateService {
	return &TemplateService{db: db, assetDir: assetDir}
}

// List returns the catalog, optionally narrowed by template type. The image
// URL points back at this service's own image endpoint.
func (s *TemplateService) List(ctx context.Context, templateType string) ([]dto.TemplateListEntry, error) {
	query := `SELECT id, title, filename_page, filename_image, type FROM templates`
	args := []any{}
	if templateType != "" {
		query += ` WHERE type = $1`
		args = append(args, templateType)
	}

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dto.TemplateListEntry
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Title, &t.FilenamePage, &t.FilenameImage, &t.Type); err != nil {
			return nil, err
		}
		result = append(result, dto.TemplateListEntry{
			UUID:     t.ID,
			Title:    t.Title,
			ImageURL: "/app/v1/template/" + t.ID.String() + "/image",
		})
	}
	return result, rows.Err()
}

// GetPage returns the template's JSON instruction file.
func (s *TemplateService) GetPage(ctx context.Context, templateID uuid.UUID) ([]byte, error) {
	t, err := s.getByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.assetDir, "page", t.FilenamePage))
	if err != nil {
		return nil, ErrTemplatePageNotFound
	}
	return content, nil
}

// GetImage returns the template's preview image and its filename.
func (s *TemplateService) GetImage(ctx context.Context, templateID uuid.UUID) (string, []byte, error) {
	t, err := s.getByID(ctx, templateID)
	if err != nil {
		return "", nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.assetDir, "image", t.FilenameImage))
	if err != nil {
		return "", nil, ErrTemplateImageNotFound
	}
	return t.FilenameImage, content, nil
}

func (s *TemplateService) getByID(ctx context.Context, templateID uuid.UUID) (*models.Template, error) {
	var t models.Template
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, title, filename_page, filename_image, type
		FROM templates
		WHERE id = $1
	`, templateID).Scan(&t.ID, &t.Title, &t.FilenamePage, &t.FilenameImage, &t.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &t, nil
}
