// Package posting owns the user actions that touch two stores: a tracker
// mutation plus its companion ledger entry. Keeping both writes here, instead
// of leaving the pairing to presentation code, is what keeps the denormalized
// stores consistent with each other.
package posting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/bill"
	"github.com/jmcardenas/centavo/internal/goal"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/savings"
)

// PartialError reports an action whose primary update was applied but whose
// companion ledger entry could not be recorded. The primary mutation is not
// rolled back; callers must surface the inconsistency as a warning rather
// than treat the whole action as failed.
type PartialError struct {
	Action string
	Err    error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s: state updated but companion transaction failed: %v", e.Action, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

type Service struct {
	ledger  *ledger.Service
	goals   *goal.Service
	bills   *bill.Service
	savings *savings.Service

	now func() time.Time
}

func NewService(l *ledger.Service, g *goal.Service, b *bill.Service, s *savings.Service) *Service {
	return &Service{
		ledger:  l,
		goals:   g,
		bills:   b,
		savings: s,
		now:     time.Now,
	}
}

// GoalContribution is the outcome of ContributeToGoal. Entry is nil when the
// action completed partially.
type GoalContribution struct {
	Goal  *goal.Goal
	Entry *ledger.Transaction
}

// ContributeToGoal adds amount to the goal and records the matching SAVING
// entry tagged with the goal's name.
func (s *Service) ContributeToGoal(ctx context.Context, ownerID, goalID uuid.UUID, amount int64) (*GoalContribution, error) {
	g, err := s.goals.Contribute(ctx, ownerID, goalID, amount)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Append(ctx, ownerID, ledger.AppendParams{
		Type:        ledger.TypeSaving,
		Amount:      amount,
		Category:    "Meta: " + g.Name,
		Description: fmt.Sprintf("Ahorro para %s", g.Name),
		Date:        s.now(),
	})
	if err != nil {
		return &GoalContribution{Goal: g}, &PartialError{Action: "contribute to goal", Err: err}
	}

	return &GoalContribution{Goal: g, Entry: entry}, nil
}

// GoalUsage is the outcome of UseGoalSavings.
type GoalUsage struct {
	Goal  *goal.Goal
	Entry *ledger.Transaction
}

// UseGoalSavings consumes a completed goal's savings and records the matching
// EXPENSE entry for the full saved amount.
func (s *Service) UseGoalSavings(ctx context.Context, ownerID, goalID uuid.UUID) (*GoalUsage, error) {
	g, err := s.goals.MarkUsed(ctx, ownerID, goalID)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Append(ctx, ownerID, ledger.AppendParams{
		Type:        ledger.TypeExpense,
		Amount:      g.CurrentAmount,
		Category:    "Uso de Meta",
		Description: fmt.Sprintf("Se usaron los ahorros de la meta %s", g.Name),
		Date:        s.now(),
	})
	if err != nil {
		return &GoalUsage{Goal: g}, &PartialError{Action: "use goal savings", Err: err}
	}

	return &GoalUsage{Goal: g, Entry: entry}, nil
}

// BillPayment is the outcome of PayBillInstallment.
type BillPayment struct {
	Receipt *bill.Receipt
	Entry   *ledger.Transaction
}

// PayBillInstallment settles one installment and records the matching
// EXPENSE entry labeled with the new installment count.
func (s *Service) PayBillInstallment(ctx context.Context, ownerID, billID uuid.UUID) (*BillPayment, error) {
	receipt, err := s.bills.QuickPayment(ctx, ownerID, billID)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Append(ctx, ownerID, ledger.AppendParams{
		Type:   ledger.TypeExpense,
		Amount: receipt.Amount,
		Category: "Pago de Cuenta",
		Description: fmt.Sprintf("PAGO DE CUOTA %d/%d PARA %s",
			receipt.PaidInstallments, receipt.Installments, strings.ToUpper(receipt.Name)),
		Date: s.now(),
	})
	if err != nil {
		return &BillPayment{Receipt: receipt}, &PartialError{Action: "pay bill installment", Err: err}
	}

	return &BillPayment{Receipt: receipt, Entry: entry}, nil
}

// PoolMovement is the outcome of a free-savings deposit or withdrawal.
type PoolMovement struct {
	Pool  *savings.Pool
	Entry *ledger.Transaction
}

// DepositFreeSavings adds to the free savings pool and records the matching
// SAVING entry.
func (s *Service) DepositFreeSavings(ctx context.Context, ownerID uuid.UUID, amount int64) (*PoolMovement, error) {
	pool, err := s.savings.Deposit(ctx, ownerID, amount)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Append(ctx, ownerID, ledger.AppendParams{
		Type:        ledger.TypeSaving,
		Amount:      amount,
		Category:    "Ahorro",
		Description: "Depósito de ahorro libre",
		Date:        s.now(),
	})
	if err != nil {
		return &PoolMovement{Pool: pool}, &PartialError{Action: "deposit free savings", Err: err}
	}

	return &PoolMovement{Pool: pool, Entry: entry}, nil
}

// WithdrawFreeSavings takes from the free savings pool and records the
// matching EXPENSE entry.
func (s *Service) WithdrawFreeSavings(ctx context.Context, ownerID uuid.UUID, amount int64, description string) (*PoolMovement, error) {
	pool, err := s.savings.Withdraw(ctx, ownerID, amount)
	if err != nil {
		return nil, err
	}

	if description == "" {
		description = "Retiro de ahorro libre"
	}

	entry, err := s.ledger.Append(ctx, ownerID, ledger.AppendParams{
		Type:        ledger.TypeExpense,
		Amount:      amount,
		Category:    "Retiro de Ahorro",
		Description: description,
		Date:        s.now(),
	})
	if err != nil {
		return &PoolMovement{Pool: pool}, &PartialError{Action: "withdraw free savings", Err: err}
	}

	return &PoolMovement{Pool: pool, Entry: entry}, nil
}
