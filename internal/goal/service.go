package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*Goal, error)

	// AddToCurrent increments current_amount atomically in the store and
	// returns the updated row.
	AddToCurrent(ctx context.Context, ownerID, id uuid.UUID, amount int64) (*Goal, error)

	// MarkUsed flips the used flag, guarded so an already-used goal is left
	// untouched (reported as ErrNotFound).
	MarkUsed(ctx context.Context, ownerID, id uuid.UUID) (*Goal, error)

	DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	TargetAmount int64
	TargetDate   time.Time
	Category     string
	Description  string
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if p.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive", ErrValidation)
	}

	if p.TargetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrValidation)
	}

	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}

	return nil
}

// Create registers a new goal starting at zero progress.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Goal, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	g := &Goal{
		OwnerID:      ownerID,
		Name:         params.Name,
		TargetAmount: params.TargetAmount,
		TargetDate:   params.TargetDate,
		Category:     params.Category,
		Description:  params.Description,
	}

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}

	return g, nil
}

// Contribute adds amount to the goal's saved total and returns the updated
// goal. The caller owns the companion SAVING ledger entry; see the posting
// service.
func (s *Service) Contribute(ctx context.Context, ownerID, id uuid.UUID, amount int64) (*Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: contribution must be positive", ErrValidation)
	}

	g, err := s.repo.AddToCurrent(ctx, ownerID, id, amount)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// MarkUsed consumes a completed goal's savings. Valid only when progress has
// reached 100% and the goal was not used before; used is terminal. The caller
// owns the companion EXPENSE ledger entry for CurrentAmount.
func (s *Service) MarkUsed(ctx context.Context, ownerID, id uuid.UUID) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if g.IsUsed {
		return nil, ErrAlreadyUsed
	}

	if !g.Completed() || g.CurrentAmount == 0 {
		return nil, ErrNotCompleted
	}

	updated, err := s.repo.MarkUsed(ctx, ownerID, id)
	if err != nil {
		// The guard in the store lost a race: the goal was used between
		// our read and the conditional update.
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAlreadyUsed
		}

		return nil, err
	}

	return updated, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, ownerID, id)
}

// TotalSavings sums CurrentAmount over all goals, used and unused alike:
// used goals keep their high-water mark, and the dashboard's savings
// composition counts it.
func TotalSavings(goals []*Goal) int64 {
	var sum int64

	for _, g := range goals {
		sum += g.CurrentAmount
	}

	return sum
}
