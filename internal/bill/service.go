package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	CreateBill(ctx context.Context, b *Bill) error
	GetBill(ctx context.Context, ownerID, id uuid.UUID) (*Bill, error)
	ListBills(ctx context.Context, ownerID uuid.UUID) ([]*Bill, error)

	// RegisterPayment increments installments_paid by one, guarded in the
	// store so a fully paid bill is never advanced (reported as ErrNotFound).
	RegisterPayment(ctx context.Context, ownerID, id uuid.UUID) (*Bill, error)

	DeleteBill(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	TotalAmount  int64
	Installments int
	DueDate      time.Time
	Category     string
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if p.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", ErrValidation)
	}

	if p.Installments < 1 {
		return fmt.Errorf("%w: at least one installment is required", ErrValidation)
	}

	if p.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrValidation)
	}

	return nil
}

// Create registers a new installment obligation. The installment amount is
// fixed here; later payments always use this value.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Bill, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	b := &Bill{
		OwnerID:           ownerID,
		Name:              params.Name,
		TotalAmount:       params.TotalAmount,
		Installments:      params.Installments,
		InstallmentAmount: params.TotalAmount / int64(params.Installments),
		DueDate:           params.DueDate,
		Category:          params.Category,
	}

	if err := s.repo.CreateBill(ctx, b); err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}

	return b, nil
}

// QuickPayment settles exactly one installment and returns a receipt for the
// caller to synthesize the paired EXPENSE ledger entry. Once every
// installment is paid, further calls fail with ErrAlreadyPaid and leave the
// bill untouched.
func (s *Service) QuickPayment(ctx context.Context, ownerID, id uuid.UUID) (*Receipt, error) {
	b, err := s.repo.RegisterPayment(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Distinguish a missing bill from one whose guard rejected
			// the increment.
			existing, getErr := s.repo.GetBill(ctx, ownerID, id)
			if getErr != nil {
				return nil, getErr
			}

			if existing.PaidInstallments >= existing.Installments {
				return nil, ErrAlreadyPaid
			}
		}

		return nil, err
	}

	return &Receipt{
		BillID:           b.ID,
		Name:             b.Name,
		Amount:           b.InstallmentAmount,
		PaidInstallments: b.PaidInstallments,
		Installments:     b.Installments,
	}, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Bill, error) {
	return s.repo.GetBill(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Bill, error) {
	return s.repo.ListBills(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteBill(ctx, ownerID, id)
}
