package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository mutations are atomic at the store: the check-and-decrement of a
// withdrawal happens in one conditional update, so two sessions for the same
// owner cannot lose updates or drive the total negative.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=savings
type Repository interface {
	GetPool(ctx context.Context, ownerID uuid.UUID) (*Pool, error)
	AddToPool(ctx context.Context, ownerID uuid.UUID, amount int64) (*Pool, error)

	// SubtractFromPool fails with ErrInsufficientFunds when amount exceeds
	// the current total.
	SubtractFromPool(ctx context.Context, ownerID uuid.UUID, amount int64) (*Pool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Total returns the owner's current free savings balance.
func (s *Service) Total(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	pool, err := s.repo.GetPool(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("getting savings pool: %w", err)
	}

	return pool.Total, nil
}

// Deposit adds amount to the pool. The caller owns the companion SAVING
// ledger entry; see the posting service.
func (s *Service) Deposit(ctx context.Context, ownerID uuid.UUID, amount int64) (*Pool, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deposit must be positive", ErrValidation)
	}

	return s.repo.AddToPool(ctx, ownerID, amount)
}

// Withdraw removes amount from the pool. A request exceeding the balance is
// rejected with ErrInsufficientFunds and changes nothing. The caller owns
// the companion EXPENSE ledger entry.
func (s *Service) Withdraw(ctx context.Context, ownerID uuid.UUID, amount int64) (*Pool, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdrawal must be positive", ErrValidation)
	}

	return s.repo.SubtractFromPool(ctx, ownerID, amount)
}
