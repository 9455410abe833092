package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AppendParams struct {
	Type        Type
	Amount      int64
	Category    string
	Description string
	Date        time.Time
}

func (p AppendParams) validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrValidation, p.Type)
	}

	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if p.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}

	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	return nil
}

// Filter narrows a listing. Date bounds are inclusive.
type Filter struct {
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

// Append validates and records a money movement. Validation failures are
// reported before any persistence call is made.
func (s *Service) Append(ctx context.Context, ownerID uuid.UUID, params AppendParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		OwnerID:     ownerID,
		Type:        params.Type,
		Amount:      params.Amount,
		Category:    params.Category,
		Description: params.Description,
		Date:        params.Date,
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

// Remove deletes a transaction by id. Removing an id that does not exist, or
// was already removed, fails with ErrNotFound.
func (s *Service) Remove(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ownerID, filter)
}

// ListForPeriod returns the transactions dated within the given calendar
// month, in date order.
func (s *Service) ListForPeriod(ctx context.Context, ownerID uuid.UUID, month time.Month, year int) ([]*Transaction, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrValidation)
	}

	start, end := PeriodBounds(month, year)

	return s.repo.ListTransactions(ctx, ownerID, Filter{StartDate: &start, EndDate: &end})
}

// SumByType reduces the amounts of all surviving entries of one type,
// optionally bounded by an inclusive cutoff date. Future-dated entries are
// included whenever they fall within the cutoff. The sum is recomputed from
// the full history on every call rather than kept as a running balance.
func (s *Service) SumByType(ctx context.Context, ownerID uuid.UUID, t Type, upTo *time.Time) (int64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: unknown type %q", ErrValidation, t)
	}

	txs, err := s.repo.ListTransactions(ctx, ownerID, Filter{Type: &t, EndDate: upTo})
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	return SumEntries(txs, t), nil
}

// PeriodBounds returns the inclusive time window covering one calendar month.
func PeriodBounds(month time.Month, year int) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return start, end
}

// SumEntries reduces the amounts of entries matching the given type.
func SumEntries(txs []*Transaction, t Type) int64 {
	var sum int64

	for _, tx := range txs {
		if tx.Type == t {
			sum += tx.Amount
		}
	}

	return sum
}
