// Package summary derives dashboard metrics from the four stores. Every
// read recomputes from fresh snapshots; nothing here caches or incrementally
// updates, so the numbers cannot drift from the underlying data.
package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/bill"
	"github.com/jmcardenas/centavo/internal/goal"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/savings"
)

var ErrInvalidPeriod = errors.New("invalid period")

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

// Overview is the financial summary for one selected month. Amounts are in
// cents; SavingsRate is a fraction of monthly income (0 when income is 0).
type Overview struct {
	Month time.Month
	Year  int

	MonthlyIncome   int64
	MonthlyExpenses int64
	MonthlySavings  int64

	// AccumulatedBalance is the cumulative net of all income minus expenses
	// minus savings through the last day of the selected month.
	AccumulatedBalance int64

	SavingsRate float64

	TotalGoalSavings int64
	FreeSavings      int64

	// TotalAccumulatedSavings composes free savings with goal savings.
	TotalAccumulatedSavings int64

	TotalPendingDebt int64
}

func (s *Service) Overview(ctx context.Context, ownerID uuid.UUID, month time.Month, year int) (*Overview, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrInvalidPeriod)
	}

	// The accumulated balance needs the full history, not just the month.
	txs, err := s.ledger.List(ctx, ownerID, ledger.Filter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	goals, err := s.goals.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	bills, err := s.bills.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}

	freeTotal, err := s.savings.Total(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return buildOverview(txs, goals, bills, freeTotal, month, year), nil
}

func buildOverview(txs []*ledger.Transaction, goals []*goal.Goal, bills []*bill.Bill, freeTotal int64, month time.Month, year int) *Overview {
	income, expenses, saved := monthlyTotals(txs, month, year)

	_, cutoff := ledger.PeriodBounds(month, year)
	goalTotal := goal.TotalSavings(goals)

	return &Overview{
		Month:                   month,
		Year:                    year,
		MonthlyIncome:           income,
		MonthlyExpenses:         expenses,
		MonthlySavings:          saved,
		AccumulatedBalance:      accumulatedBalance(txs, cutoff),
		SavingsRate:             savingsRate(saved, income),
		TotalGoalSavings:        goalTotal,
		FreeSavings:             freeTotal,
		TotalAccumulatedSavings: freeTotal + goalTotal,
		TotalPendingDebt:        bill.TotalPendingDebt(bills),
	}
}

func monthlyTotals(txs []*ledger.Transaction, month time.Month, year int) (income, expenses, saved int64) {
	start, end := ledger.PeriodBounds(month, year)

	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}

		switch tx.Type {
		case ledger.TypeIncome:
			income += tx.Amount
		case ledger.TypeExpense:
			expenses += tx.Amount
		case ledger.TypeSaving:
			saved += tx.Amount
		}
	}

	return income, expenses, saved
}

// accumulatedBalance reduces the whole surviving history up to and including
// the cutoff. Future-dated entries count whenever they fall within it.
func accumulatedBalance(txs []*ledger.Transaction, cutoff time.Time) int64 {
	var balance int64

	for _, tx := range txs {
		if tx.Date.After(cutoff) {
			continue
		}

		switch tx.Type {
		case ledger.TypeIncome:
			balance += tx.Amount
		case ledger.TypeExpense, ledger.TypeSaving:
			balance -= tx.Amount
		}
	}

	return balance
}

func savingsRate(saved, income int64) float64 {
	if income <= 0 {
		return 0
	}

	return float64(saved) / float64(income)
}

// TrendPoint is one month of the historical series.
type TrendPoint struct {
	Month    time.Month
	Year     int
	Income   int64
	Expenses int64
	Savings  int64
}

const defaultTrendMonths = 12

// Trends returns the per-month income/expense/savings series for the
// trailing window ending at the current month, oldest first.
func (s *Service) Trends(ctx context.Context, ownerID uuid.UUID, months int) ([]TrendPoint, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}

	txs, err := s.ledger.List(ctx, ownerID, ledger.Filter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return buildTrend(txs, months, s.now()), nil
}

func buildTrend(txs []*ledger.Transaction, months int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

		income, expenses, saved := monthlyTotals(txs, ref.Month(), ref.Year())
		points = append(points, TrendPoint{
			Month:    ref.Month(),
			Year:     ref.Year(),
			Income:   income,
			Expenses: expenses,
			Savings:  saved,
		})
	}

	return points
}
