package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/goal"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

type Alert struct {
	Severity Severity
	Code     string
	Title    string
	Detail   string
}

// Thresholds behind the dashboard's indicator alerts: spending is flagged
// above 70% of income, and a net savings rate below 20% is flagged.
const (
	budgetShareLimit   = 0.70
	savingsRateMinimum = 0.20
	deadlineWindowDays = 30
)

// Alerts derives the indicator list for the selected month.
func (s *Service) Alerts(ctx context.Context, ownerID uuid.UUID, month time.Month, year int) ([]Alert, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrInvalidPeriod)
	}

	txs, err := s.ledger.ListForPeriod(ctx, ownerID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	goals, err := s.goals.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	income, expenses, _ := monthlyTotals(txs, month, year)

	return buildAlerts(income, expenses, goals, s.now()), nil
}

func buildAlerts(income, expenses int64, goals []*goal.Goal, now time.Time) []Alert {
	var alerts []Alert

	if income > 0 {
		share := float64(expenses) / float64(income)
		if share > budgetShareLimit {
			alerts = append(alerts, Alert{
				Severity: SeverityWarning,
				Code:     "high-expenses",
				Title:    "Gastos elevados",
				Detail: fmt.Sprintf("Estás gastando %.1f%% de tus ingresos; se recomienda mantener los gastos por debajo del %.0f%%.",
					share*100, budgetShareLimit*100),
			})
		}

		netRate := float64(income-expenses) / float64(income)
		if netRate < savingsRateMinimum {
			alerts = append(alerts, Alert{
				Severity: SeverityWarning,
				Code:     "low-savings-rate",
				Title:    "Tasa de ahorro baja",
				Detail: fmt.Sprintf("Tu tasa de ahorro es del %.1f%%; se recomienda ahorrar al menos el %.0f%% de tus ingresos.",
					netRate*100, savingsRateMinimum*100),
			})
		}
	}

	var completed int

	for _, g := range goals {
		if g.Progress() >= 1.0 {
			completed++
			continue
		}

		days, err := g.DaysRemaining(now)
		if err != nil {
			// Goals with an unusable target date cannot be compared
			// against the deadline window.
			continue
		}

		if days > 0 && days <= deadlineWindowDays {
			alerts = append(alerts, Alert{
				Severity: SeverityInfo,
				Code:     "goal-deadline",
				Title:    "Meta próxima a vencer",
				Detail: fmt.Sprintf("La meta %q vence en %d días; progreso actual: %.1f%%.",
					g.Name, days, g.Progress()*100),
			})
		}
	}

	if completed > 0 {
		alerts = append(alerts, Alert{
			Severity: SeveritySuccess,
			Code:     "goals-completed",
			Title:    "Metas completadas",
			Detail:   fmt.Sprintf("Has completado %d meta(s) financiera(s).", completed),
		})
	}

	return alerts
}
