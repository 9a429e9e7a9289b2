package finance

import (
	"math"
	"time"

	"github.com/apereira/fluxo/internal/database/repository"
)

// Forecast is the expected income/expense picture for one calendar month.
type Forecast struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
	IsPositive    bool    `json:"isPositive"`
}

// MonthlyForecast sums expected income and expense contributions for the
// given month. Single incomes count when dated inside the month; recurring
// incomes contribute their monthly equivalent unconditionally (no
// start/end filtering happens at month granularity). Recurring expenses
// fold through the same equivalence table, and one-off expense
// transactions dated inside the month add their magnitude.
func MonthlyForecast(s Snapshot, year int, month time.Month) Forecast {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := endOfDay(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))
	days := daysInMonth(year, month)

	var totalIncome float64
	for _, in := range s.Incomes {
		switch in.IncomeType {
		case repository.IncomeSingle:
			if in.Date != nil && !in.Date.Before(firstDay) && !in.Date.After(lastDay) {
				totalIncome += in.Amount
			}
		case repository.IncomeRecurring:
			if in.Frequency != nil {
				totalIncome += MonthlyEquivalent(in.Amount, *in.Frequency, days)
			}
		}
	}

	var totalExpenses float64
	for _, rt := range s.Recurring {
		if rt.Type == repository.TypeExpense {
			totalExpenses += MonthlyEquivalent(math.Abs(rt.Amount), rt.Frequency, days)
		}
	}
	for _, t := range s.Transactions {
		if t.Type == repository.TypeExpense && !t.Date.Before(firstDay) && !t.Date.After(lastDay) {
			totalExpenses += math.Abs(t.Amount)
		}
	}

	balance := totalIncome - totalExpenses
	return Forecast{
		Year:          year,
		Month:         int(month),
		TotalIncome:   Round2(totalIncome),
		TotalExpenses: Round2(totalExpenses),
		Balance:       Round2(balance),
		IsPositive:    balance >= 0,
	}
}
