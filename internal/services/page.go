package services

import (
	"context"
	"errors"

	"github.com/avelikanov/dui-admin/internal/database"
	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPageNotFound = errors.New("page not found")

// PageService serves the read-only catalog of named JSON instruction
// documents the UI runtime renders.
type PageService struct {
	db *database.DB
}

func NewPageService(db *database.DB) *PageService {
	return &PageService{db: db}
}

const pageColumns = `id, name, title, instructions, COALESCE(author, ''), updated_at`

// GetByName looks a page up by its route name, case-insensitively.
func (s *PageService) GetByName(ctx context.Context, name string) (*models.Page, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE LOWER(name) = LOWER($1)
	`, name)
	return scanPage(row)
}

func (s *PageService) GetByID(ctx context.Context, pageID uuid.UUID) (*models.Page, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE id = $1
	`, pageID)
	return scanPage(row)
}

func scanPage(row pgx.Row) (*models.Page, error) {
	var p models.Page
	err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Instructions, &p.Author, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &p, nil
}
