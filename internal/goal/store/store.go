package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, owner_id, name, target_amount, current_amount,
// target_date, completed, category, description, created_at
func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var description sql.NullString

	if err := s.Scan(
		&g.ID, &g.OwnerID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.TargetDate, &g.IsUsed, &g.Category, &description, &g.CreatedAt,
	); err != nil {
		return nil, err
	}

	g.Description = description.String

	return &g, nil
}

const selectGoalColumns = `
	g.id, g.owner_id, g.name, g.target_amount, g.current_amount,
	g.target_date, g.completed, g.category, g.description, g.created_at
`

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (owner_id, name, target_amount, current_amount, target_date, completed, category, description, created_at)
		VALUES ($1, $2, $3, 0, $4, FALSE, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.OwnerID,
		g.Name,
		g.TargetAmount,
		g.TargetDate,
		g.Category,
		g.Description,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals g
		WHERE g.owner_id = $1 AND g.id = $2`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals g
		WHERE g.owner_id = $1
		ORDER BY g.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	return goals, nil
}

// AddToCurrent performs the increment in the database so concurrent
// contributions cannot lose updates.
func (s *Store) AddToCurrent(ctx context.Context, ownerID, id uuid.UUID, amount int64) (*goal.Goal, error) {
	query := `
		UPDATE goals g
		SET current_amount = current_amount + $3
		WHERE g.owner_id = $1 AND g.id = $2
		RETURNING ` + selectGoalColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, ownerID, id, amount))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("incrementing goal amount: %w", err)
	}

	return g, nil
}

// MarkUsed flips the completed flag; the guard keeps an already-used goal
// untouched and reports it as no match.
func (s *Store) MarkUsed(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error) {
	query := `
		UPDATE goals g
		SET completed = TRUE
		WHERE g.owner_id = $1 AND g.id = $2 AND g.completed = FALSE
		RETURNING ` + selectGoalColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("marking goal used: %w", err)
	}

	return g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM goals WHERE owner_id = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if affected == 0 {
		return goal.ErrNotFound
	}

	return nil
}
