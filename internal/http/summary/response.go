package summary

import (
	"time"

	"github.com/jmcardenas/centavo/internal/summary"
)

type overviewResponse struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`

	MonthlyIncome   int64 `json:"monthly_income"`
	MonthlyExpenses int64 `json:"monthly_expenses"`
	MonthlySavings  int64 `json:"monthly_savings"`

	AccumulatedBalance int64   `json:"accumulated_balance"`
	SavingsRate        float64 `json:"savings_rate"`

	TotalGoalSavings        int64 `json:"total_goal_savings"`
	FreeSavings             int64 `json:"free_savings"`
	TotalAccumulatedSavings int64 `json:"total_accumulated_savings"`

	TotalPendingDebt int64 `json:"total_pending_debt"`
}

func toOverviewResponse(ov *summary.Overview) overviewResponse {
	return overviewResponse{
		Month:                   ov.Month,
		Year:                    ov.Year,
		MonthlyIncome:           ov.MonthlyIncome,
		MonthlyExpenses:         ov.MonthlyExpenses,
		MonthlySavings:          ov.MonthlySavings,
		AccumulatedBalance:      ov.AccumulatedBalance,
		SavingsRate:             ov.SavingsRate,
		TotalGoalSavings:        ov.TotalGoalSavings,
		FreeSavings:             ov.FreeSavings,
		TotalAccumulatedSavings: ov.TotalAccumulatedSavings,
		TotalPendingDebt:        ov.TotalPendingDebt,
	}
}

type trendPointResponse struct {
	Month    time.Month `json:"month"`
	Year     int        `json:"year"`
	Income   int64      `json:"income"`
	Expenses int64      `json:"expenses"`
	Savings  int64      `json:"savings"`
}

func toTrendResponse(points []summary.TrendPoint) []trendPointResponse {
	resp := make([]trendPointResponse, len(points))
	for i, p := range points {
		resp[i] = trendPointResponse{
			Month:    p.Month,
			Year:     p.Year,
			Income:   p.Income,
			Expenses: p.Expenses,
			Savings:  p.Savings,
		}
	}

	return resp
}

type alertResponse struct {
	Severity summary.Severity `json:"severity"`
	Code     string           `json:"code"`
	Title    string           `json:"title"`
	Detail   string           `json:"detail"`
}

func toAlertResponse(alerts []summary.Alert) []alertResponse {
	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = alertResponse{
			Severity: a.Severity,
			Code:     a.Code,
			Title:    a.Title,
			Detail:   a.Detail,
		}
	}

	return resp
}
