package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/savings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetPool reads the owner's single free-savings row. A missing row is a
// zero pool, not an error.
func (s *Store) GetPool(ctx context.Context, ownerID uuid.UUID) (*savings.Pool, error) {
	query := `
		SELECT owner_id, total_amount, updated_at
		FROM free_savings
		WHERE owner_id = $1
	`

	var pool savings.Pool

	err := s.db.QueryRowContext(ctx, query, ownerID).
		Scan(&pool.OwnerID, &pool.Total, &pool.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return &savings.Pool{OwnerID: ownerID}, nil
		}

		return nil, fmt.Errorf("getting free savings: %w", err)
	}

	return &pool, nil
}

// AddToPool increments the total in a single upsert. The database owns the
// arithmetic, so concurrent deposits never lose updates.
func (s *Store) AddToPool(ctx context.Context, ownerID uuid.UUID, amount int64) (*savings.Pool, error) {
	query := `
		INSERT INTO free_savings (owner_id, total_amount, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (owner_id) DO UPDATE
		SET total_amount = free_savings.total_amount + EXCLUDED.total_amount,
		    updated_at = NOW()
		RETURNING owner_id, total_amount, updated_at
	`

	var pool savings.Pool

	err := s.db.QueryRowContext(ctx, query, ownerID, amount).
		Scan(&pool.OwnerID, &pool.Total, &pool.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("adding to free savings: %w", err)
	}

	return &pool, nil
}

// SubtractFromPool decrements the total with the balance check folded into
// the update guard; an uncovered withdrawal matches no row and leaves the
// total unchanged.
func (s *Store) SubtractFromPool(ctx context.Context, ownerID uuid.UUID, amount int64) (*savings.Pool, error) {
	query := `
		UPDATE free_savings
		SET total_amount = total_amount - $2, updated_at = NOW()
		WHERE owner_id = $1 AND total_amount >= $2
		RETURNING owner_id, total_amount, updated_at
	`

	var pool savings.Pool

	err := s.db.QueryRowContext(ctx, query, ownerID, amount).
		Scan(&pool.OwnerID, &pool.Total, &pool.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, savings.ErrInsufficientFunds
		}

		return nil, fmt.Errorf("subtracting from free savings: %w", err)
	}

	return &pool, nil
}
