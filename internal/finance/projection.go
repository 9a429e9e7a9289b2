package finance

import (
	"math"
	"time"

	"github.com/apereira/fluxo/internal/database/repository"
)

// DailyPoint is one day of the daily cash-flow projection.
type DailyPoint struct {
	Date       string  `json:"date"`
	Balance    float64 `json:"balance"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	IsPositive bool    `json:"isPositive"`
}

// DailyCashFlow walks forward one day at a time from start through
// start+months inclusive, applying that day's income and expense events to
// a running balance seeded from the unified balance.
//
// Per day: single incomes dated that day plus monthly/daily recurring
// income events; recurring expenses anchored to that day of month; and the
// day's realized spend if recorded, otherwise the active daily budget,
// never both. The balance is rounded after every day.
//
// Note the first point already includes start's own events, so its balance
// equals the seed only on days with none.
func DailyCashFlow(s Snapshot, start time.Time, months int) []DailyPoint {
	balance := UnifiedBalance(s, start).Total

	day := startOfDay(start)
	end := day.AddDate(0, months, 0)

	var projection []DailyPoint
	for !day.After(end) {
		dayOfMonth := day.Day()
		var dailyIncome, dailyExpense float64

		for _, in := range s.Incomes {
			switch in.IncomeType {
			case repository.IncomeSingle:
				if in.Date != nil && sameDay(*in.Date, day) {
					dailyIncome += in.Amount
				}
			case repository.IncomeRecurring:
				dailyIncome += dailyIncomeContribution(in, day)
			}
		}

		for _, rt := range s.Recurring {
			if rt.Type == repository.TypeExpense && rt.DayOfMonth == dayOfMonth {
				dailyExpense += math.Abs(rt.Amount)
			}
		}

		// realized spend overrides the budget estimate for the day
		if spent, ok := expenseForDay(s.DailyExpenses, day); ok {
			dailyExpense += spent
		} else if b := activeBudgetFor(s.DailyBudgets, day); b != nil {
			dailyExpense += b.Amount
		}

		balance = Round2(balance + dailyIncome - dailyExpense)
		projection = append(projection, DailyPoint{
			Date:       day.Format(time.DateOnly),
			Balance:    balance,
			Income:     Round2(dailyIncome),
			Expense:    Round2(dailyExpense),
			IsPositive: balance >= 0,
		})

		day = day.AddDate(0, 0, 1)
	}
	return projection
}

func expenseForDay(expenses []repository.DailyExpense, day time.Time) (float64, bool) {
	for _, e := range expenses {
		if sameDay(e.Date, day) {
			return e.Amount, true
		}
	}
	return 0, false
}

// MonthPoint is one month of the coarse balance projection.
type MonthPoint struct {
	Month   string    `json:"month"`
	Date    time.Time `json:"date"`
	Balance float64   `json:"balance"`
}

// MonthlyProjection buckets the forward projection by month. Index 0 is
// the current balance untouched; each following month applies every
// recurring transaction active on the first of that month, signed.
func MonthlyProjection(s Snapshot, start time.Time, months int) []MonthPoint {
	balance := UnifiedBalance(s, start).Total

	var projection []MonthPoint
	for i := 0; i <= months; i++ {
		projDate := time.Date(start.Year(), start.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		if i == 0 {
			projection = append(projection, MonthPoint{
				Month:   monthLabel(projDate),
				Date:    projDate,
				Balance: Round2(balance),
			})
			continue
		}

		for _, rt := range s.Recurring {
			if recurringActiveOn(rt, projDate) {
				balance += rt.Amount
			}
		}
		projection = append(projection, MonthPoint{
			Month:   monthLabel(projDate),
			Date:    projDate,
			Balance: Round2(balance),
		})
	}
	return projection
}

func recurringActiveOn(rt repository.RecurringTransaction, date time.Time) bool {
	if rt.StartDate != nil && date.Before(startOfDay(*rt.StartDate)) {
		return false
	}
	if rt.EndDate != nil && date.After(endOfDay(*rt.EndDate)) {
		return false
	}
	return true
}

func monthLabel(date time.Time) string {
	return date.Format("Jan/06")
}
