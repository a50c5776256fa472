package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/avelikanov/dui-admin/internal/database"
	"github.com/avelikanov/dui-admin/internal/models"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrTitleConflict      = errors.New("collection title already exists for this owner")
	ErrEditConflict       = errors.New("collection was edited concurrently")
	ErrCreateFailed       = errors.New("failed to create collection")
	ErrExportFailed       = errors.New("failed to export collection")
)

var (
	emptyList   = json.RawMessage(`[]`)
	emptyObject = json.RawMessage(`{}`)
)

// ExportFile is a collection serialized for download. Filename carries no
// extension; the handler appends ".json".
type ExportFile struct {
	Filename string
	Content  []byte
}

// CollectionService owns the collection_versions table. Editing never
// updates a version row's payload: it flips the current row off and inserts
// a fresh one, which makes the history query free.
type CollectionService struct {
	db *database.DB
}

func NewCollectionService(db *database.DB) *CollectionService {
	return &CollectionService{db: db}
}

const collectionColumns = `version_id, collection_id, owner_id, title, pages, mocks, config, COALESCE(is_current, FALSE), created_at`

// List returns the short view of every current collection owned by ownerID.
func (s *CollectionService) List(ctx context.Context, ownerID uuid.UUID) ([]dto.CollectionShortResponse, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+collectionColumns+`
		FROM collection_versions
		WHERE owner_id = $1 AND is_current IS TRUE
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dto.CollectionShortResponse
	for rows.Next() {
		v, err := scanCollectionVersion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.CollectionShortResponse{
			UUID:  v.CollectionID,
			Title: v.Title,
		})
	}
	return result, rows.Err()
}

// GetCurrent returns the full view of the collection's current version.
func (s *CollectionService) GetCurrent(ctx context.Context, collectionID uuid.UUID) (*dto.CollectionResponse, error) {
	v, err := s.findCurrent(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return toCollectionResponse(v), nil
}

// GetByVersion returns the full view of one specific version row.
func (s *CollectionService) GetByVersion(ctx context.Context, versionID uuid.UUID) (*dto.CollectionResponse, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+collectionColumns+`
		FROM collection_versions
		WHERE version_id = $1
	`, versionID)

	v, err := scanCollectionVersion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return toCollectionResponse(v), nil
}

// History returns every version of the collection, oldest first.
func (s *CollectionService) History(ctx context.Context, collectionID uuid.UUID) ([]dto.CollectionHistoryResponse, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+collectionColumns+`
		FROM collection_versions
		WHERE collection_id = $1
		ORDER BY created_at ASC
	`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []dto.CollectionHistoryResponse
	for rows.Next() {
		v, err := scanCollectionVersion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.CollectionHistoryResponse{
			UUID:         v.VersionID,
			Title:        v.Title,
			CreationDate: v.CreatedAt,
			IsCurrent:    v.IsCurrent,
			Pages:        orDefault(v.Pages, emptyList),
			Mocks:        orDefault(v.Mocks, emptyList),
			Config:       orDefault(v.Config, emptyObject),
		})
	}
	return result, rows.Err()
}

// Export serializes the current version as pretty-printed JSON, named after
// the version row's id.
func (s *CollectionService) Export(ctx context.Context, collectionID uuid.UUID) (*ExportFile, error) {
	v, err := s.findCurrent(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	content, err := json.MarshalIndent(toCollectionResponse(v), "", "  ")
	if err != nil {
		log.Printf("export collection %s failed: %v", v.VersionID, err)
		return nil, ErrExportFailed
	}

	return &ExportFile{
		Filename: v.VersionID.String(),
		Content:  content,
	}, nil
}

// Create starts a brand-new collection: the first version's collection id
// equals its own version id. A persistence failure is masked as
// ErrCreateFailed.
func (s *CollectionService) Create(ctx context.Context, ownerID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error) {
	collides, err := s.titleCollides(ctx, req.Title, ownerID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if collides {
		return nil, ErrTitleConflict
	}

	versionID := uuid.New()
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO collection_versions (version_id, collection_id, owner_id, title, pages, mocks, config, is_current)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING `+collectionColumns+`
	`, versionID, versionID, ownerID, req.Title,
		orDefault(req.Pages, emptyList), orDefault(req.Mocks, emptyList), orDefault(req.Config, emptyObject))

	v, err := scanCollectionVersion(row)
	if err != nil {
		log.Printf("create collection failed: %v", err)
		return nil, ErrCreateFailed
	}
	return toCollectionResponse(v), nil
}

// Edit supersedes the current version: the title check runs before anything
// is mutated, then the flip and the insert commit or roll back together. The
// flip is guarded on is_current so a concurrent edit that got there first
// turns into ErrEditConflict instead of a second "current" row. Owner
// identity is carried over from the superseded row, never from the caller.
func (s *CollectionService) Edit(ctx context.Context, collectionID uuid.UUID, req dto.SaveCollectionRequest) (*dto.CollectionResponse, error) {
	current, err := s.findCurrent(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	collides, err := s.titleCollides(ctx, req.Title, current.OwnerID, collectionID)
	if err != nil {
		return nil, err
	}
	if collides {
		return nil, ErrTitleConflict
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE collection_versions SET is_current = NULL
		WHERE version_id = $1 AND is_current IS TRUE
	`, current.VersionID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrEditConflict
	}

	versionID := uuid.New()
	row := tx.QueryRow(ctx, `
		INSERT INTO collection_versions (version_id, collection_id, owner_id, title, pages, mocks, config, is_current)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING `+collectionColumns+`
	`, versionID, collectionID, current.OwnerID, req.Title,
		orDefault(req.Pages, emptyList), orDefault(req.Mocks, emptyList), orDefault(req.Config, emptyObject))

	v, err := scanCollectionVersion(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return toCollectionResponse(v), nil
}

// Delete removes every version of the collection. Deleting a collection that
// does not exist is a no-op.
func (s *CollectionService) Delete(ctx context.Context, collectionID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM collection_versions WHERE collection_id = $1`, collectionID)
	return err
}

// Exists reports ErrCollectionNotFound when no version row belongs to the
// collection. Other modules use it as a precondition gate.
func (s *CollectionService) Exists(ctx context.Context, collectionID uuid.UUID) error {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM collection_versions WHERE collection_id = $1)
	`, collectionID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCollectionNotFound
	}
	return nil
}

func (s *CollectionService) findCurrent(ctx context.Context, collectionID uuid.UUID) (*models.CollectionVersion, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+collectionColumns+`
		FROM collection_versions
		WHERE collection_id = $1 AND is_current IS TRUE
	`, collectionID)

	v, err := scanCollectionVersion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return v, nil
}

// titleCollides checks title uniqueness per owner. Versions of the excluded
// collection do not count: a collection may keep (or return to) any title
// from its own history. A Nil excluded id means "no group exists yet",
// i.e. the create path.
func (s *CollectionService) titleCollides(ctx context.Context, title string, ownerID, excludedCollectionID uuid.UUID) (bool, error) {
	var collides bool
	var err error
	if excludedCollectionID == uuid.Nil {
		err = s.db.Pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM collection_versions WHERE title = $1 AND owner_id = $2)
		`, title, ownerID).Scan(&collides)
	} else {
		err = s.db.Pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM collection_versions WHERE title = $1 AND owner_id = $2 AND collection_id <> $3)
		`, title, ownerID, excludedCollectionID).Scan(&collides)
	}
	return collides, err
}

func scanCollectionVersion(row pgx.Row) (*models.CollectionVersion, error) {
	var v models.CollectionVersion
	err := row.Scan(
		&v.VersionID, &v.CollectionID, &v.OwnerID, &v.Title,
		&v.Pages, &v.Mocks, &v.Config, &v.IsCurrent, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func toCollectionResponse(v *models.CollectionVersion) *dto.CollectionResponse {
	return &dto.CollectionResponse{
		UUID:   v.CollectionID,
		Title:  v.Title,
		Pages:  orDefault(v.Pages, emptyList),
		Mocks:  orDefault(v.Mocks, emptyList),
		Config: orDefault(v.Config, emptyObject),
	}
}

func orDefault(payload, fallback json.RawMessage) json.RawMessage {
	if len(payload) == 0 || string(payload) == "null" {
		return fallback
	}
	return payload
}
