package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	// Collection versions: editing inserts a new row, it never updates a
	// payload in place. is_current is NULL for superseded rows.
	`CREATE TABLE IF NOT EXISTS collection_versions (
		version_id UUID PRIMARY KEY,
		collection_id UUID NOT NULL,
		owner_id UUID NOT NULL,
		title VARCHAR(255) NOT NULL,
		pages JSONB NOT NULL DEFAULT '[]',
		mocks JSONB NOT NULL DEFAULT '[]',
		config JSONB NOT NULL DEFAULT '{}',
		is_current BOOLEAN,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_collection_versions_collection_id ON collection_versions(collection_id)`,
	`CREATE INDEX IF NOT EXISTS idx_collection_versions_owner_current ON collection_versions(owner_id) WHERE is_current IS TRUE`,

	`CREATE TABLE IF NOT EXISTS pages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL UNIQUE,
		title VARCHAR(255) NOT NULL,
		instructions JSONB NOT NULL DEFAULT '{}',
		author VARCHAR(255),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_pages_name_lower ON pages (LOWER(name))`,

	`CREATE TABLE IF NOT EXISTS templates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		filename_page VARCHAR(255) NOT NULL,
		filename_image VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL CHECK (type IN ('PAGE', 'COMPONENT'))
	)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
