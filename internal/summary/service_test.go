package summary_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardenas/centavo/internal/bill"
	"github.com/jmcardenas/centavo/internal/goal"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/savings"
	"github.com/jmcardenas/centavo/internal/summary"
)

type fixture struct {
	ledgerRepo  *ledger.MockRepository
	goalRepo    *goal.MockRepository
	billRepo    *bill.MockRepository
	savingsRepo *savings.MockRepository
	svc         *summary.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		ledgerRepo:  ledger.NewMockRepository(ctrl),
		goalRepo:    goal.NewMockRepository(ctrl),
		billRepo:    bill.NewMockRepository(ctrl),
		savingsRepo: savings.NewMockRepository(ctrl),
	}

	f.svc = summary.NewService(
		ledger.NewService(f.ledgerRepo),
		goal.NewService(f.goalRepo),
		bill.NewService(f.billRepo),
		savings.NewService(f.savingsRepo),
	)

	return f
}

func (f *fixture) stubStores(txs []*ledger.Transaction, goals []*goal.Goal, bills []*bill.Bill, freeTotal int64) {
	f.ledgerRepo.EXPECT().ListTransactions(gomock.Any(), gomock.Any(), gomock.Any()).Return(txs, nil).AnyTimes()
	f.goalRepo.EXPECT().ListGoals(gomock.Any(), gomock.Any()).Return(goals, nil).AnyTimes()
	f.billRepo.EXPECT().ListBills(gomock.Any(), gomock.Any()).Return(bills, nil).AnyTimes()
	f.savingsRepo.EXPECT().GetPool(gomock.Any(), gomock.Any()).
		Return(&savings.Pool{Total: freeTotal}, nil).AnyTimes()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Overview(t *testing.T) {
	f := newFixture(t)

	// December history plus the selected January month.
	txs := []*ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: 320000, Date: date(2024, 12, 1)},
		{Type: ledger.TypeExpense, Amount: 120000, Date: date(2024, 12, 1)},
		{Type: ledger.TypeSaving, Amount: 30000, Date: date(2024, 12, 1)},

		{Type: ledger.TypeIncome, Amount: 350000, Date: date(2025, 1, 1)},
		{Type: ledger.TypeExpense, Amount: 120000, Date: date(2025, 1, 1)},
		{Type: ledger.TypeSaving, Amount: 50000, Date: date(2025, 1, 1)},

		// Next month: outside both the period and the cutoff.
		{Type: ledger.TypeIncome, Amount: 999900, Date: date(2025, 2, 3)},
	}

	goals := []*goal.Goal{
		{TargetAmount: 1000000, CurrentAmount: 350000},
		{TargetAmount: 200000, CurrentAmount: 200000, IsUsed: true},
	}

	bills := []*bill.Bill{
		{Installments: 12, PaidInstallments: 5, InstallmentAmount: 10000},
	}

	f.stubStores(txs, goals, bills, 75000)

	ov, err := f.svc.Overview(context.Background(), uuid.New(), time.January, 2025)
	require.NoError(t, err)

	assert.Equal(t, int64(350000), ov.MonthlyIncome)
	assert.Equal(t, int64(120000), ov.MonthlyExpenses)
	assert.Equal(t, int64(50000), ov.MonthlySavings)

	// (320000+350000) − (120000+120000) − (30000+50000)
	assert.Equal(t, int64(350000), ov.AccumulatedBalance)

	assert.InDelta(t, 50000.0/350000.0, ov.SavingsRate, 1e-9)

	assert.Equal(t, int64(550000), ov.TotalGoalSavings) // used goal still counts
	assert.Equal(t, int64(75000), ov.FreeSavings)
	assert.Equal(t, int64(625000), ov.TotalAccumulatedSavings)
	assert.Equal(t, int64(70000), ov.TotalPendingDebt)
}

// The scenario from the dashboard's first month of data.
func TestService_Overview_SingleMonth(t *testing.T) {
	f := newFixture(t)

	f.stubStores([]*ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: 350000, Date: date(2025, 1, 1)},
		{Type: ledger.TypeExpense, Amount: 120000, Date: date(2025, 1, 1)},
		{Type: ledger.TypeSaving, Amount: 50000, Date: date(2025, 1, 1)},
	}, nil, nil, 0)

	ov, err := f.svc.Overview(context.Background(), uuid.New(), time.January, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(180000), ov.AccumulatedBalance)
}

func TestService_Overview_ZeroIncome(t *testing.T) {
	f := newFixture(t)

	f.stubStores([]*ledger.Transaction{
		{Type: ledger.TypeExpense, Amount: 50000, Date: date(2025, 3, 10)},
		{Type: ledger.TypeSaving, Amount: 20000, Date: date(2025, 3, 10)},
	}, nil, nil, 0)

	ov, err := f.svc.Overview(context.Background(), uuid.New(), time.March, 2025)
	require.NoError(t, err)
	assert.Zero(t, ov.SavingsRate)
	assert.Equal(t, int64(-70000), ov.AccumulatedBalance)
}

func TestService_Overview_BadMonth(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Overview(context.Background(), uuid.New(), time.Month(0), 2025)
	assert.ErrorIs(t, err, summary.ErrInvalidPeriod)
}

func TestService_Trends(t *testing.T) {
	f := newFixture(t)

	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	f.stubStores([]*ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: 300000, Date: lastMonth},
		{Type: ledger.TypeIncome, Amount: 350000, Date: thisMonth},
		{Type: ledger.TypeExpense, Amount: 100000, Date: thisMonth},
	}, nil, nil, 0)

	points, err := f.svc.Trends(context.Background(), uuid.New(), 12)
	require.NoError(t, err)
	require.Len(t, points, 12)

	last := points[len(points)-1]
	assert.Equal(t, now.Month(), last.Month)
	assert.Equal(t, int64(350000), last.Income)
	assert.Equal(t, int64(100000), last.Expenses)

	previous := points[len(points)-2]
	assert.Equal(t, int64(300000), previous.Income)
	assert.Zero(t, previous.Expenses)
}

func TestService_Trends_DefaultWindow(t *testing.T) {
	f := newFixture(t)
	f.stubStores(nil, nil, nil, 0)

	points, err := f.svc.Trends(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 12)
}

func alertCodes(alerts []summary.Alert) []string {
	codes := make([]string, len(alerts))
	for i, a := range alerts {
		codes[i] = a.Code
	}

	return codes
}

func TestService_Alerts(t *testing.T) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC)

	t.Run("HighExpensesAndLowRate", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores([]*ledger.Transaction{
			{Type: ledger.TypeIncome, Amount: 100000, Date: monthStart},
			{Type: ledger.TypeExpense, Amount: 90000, Date: monthStart},
		}, nil, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)
		assert.Contains(t, alertCodes(alerts), "high-expenses")
		assert.Contains(t, alertCodes(alerts), "low-savings-rate")
	})

	t.Run("HealthyBudgetIsQuiet", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores([]*ledger.Transaction{
			{Type: ledger.TypeIncome, Amount: 100000, Date: monthStart},
			{Type: ledger.TypeExpense, Amount: 50000, Date: monthStart},
		}, nil, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("GoalDeadline", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores(nil, []*goal.Goal{
			{Name: "Viaje", TargetAmount: 500000, CurrentAmount: 100000, TargetDate: now.AddDate(0, 0, 10)},
		}, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)
		assert.Contains(t, alertCodes(alerts), "goal-deadline")
	})

	t.Run("DistantDeadlineIgnored", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores(nil, []*goal.Goal{
			{Name: "Viaje", TargetAmount: 500000, CurrentAmount: 100000, TargetDate: now.AddDate(1, 0, 0)},
		}, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("MissingTargetDateIgnored", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores(nil, []*goal.Goal{
			{Name: "Sin fecha", TargetAmount: 500000, CurrentAmount: 100000},
		}, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("CompletedGoals", func(t *testing.T) {
		f := newFixture(t)
		f.stubStores(nil, []*goal.Goal{
			{Name: "Curso", TargetAmount: 150000, CurrentAmount: 150000, TargetDate: now.AddDate(0, 0, 5)},
		}, nil, 0)

		alerts, err := f.svc.Alerts(context.Background(), uuid.New(), now.Month(), now.Year())
		require.NoError(t, err)

		codes := alertCodes(alerts)
		assert.Contains(t, codes, "goals-completed")
		// A completed goal is not also reported as a looming deadline.
		assert.NotContains(t, codes, "goal-deadline")
	})
}
