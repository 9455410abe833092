package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindCategory matches description against the owner's stored patterns. The
// longest pattern wins; ties go to the newest mapping.
func (s *Store) FindCategory(ctx context.Context, ownerID uuid.UUID, description string) (string, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE owner_id = $1 AND $2 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, ownerID, description).Scan(&category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return category, nil
}

func (s *Store) CreateMapping(ctx context.Context, ownerID uuid.UUID, pattern, category string) error {
	query := `
		INSERT INTO category_mappings (owner_id, pattern, category, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner_id, pattern) DO UPDATE
		SET category = EXCLUDED.category, created_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, ownerID, pattern, category)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
