package finance

import (
	"time"

	"github.com/apereira/fluxo/internal/database/repository"
)

// Snapshot is a point-in-time read of every record collection. All engine
// functions compute from one snapshot so a single call never mixes reads.
type Snapshot struct {
	Transactions  []repository.Transaction
	Incomes       []repository.Income
	Recurring     []repository.RecurringTransaction
	DailyBudgets  []repository.DailyBudget
	DailyExpenses []repository.DailyExpense
}

// budgetOpenEnd stands in for a missing budget end date.
var budgetOpenEnd = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// activeBudgetFor returns the first budget whose range contains day, in the
// snapshot's scan order (newest start first). Overlapping ranges are not
// detected; the first match wins.
func activeBudgetFor(budgets []repository.DailyBudget, day time.Time) *repository.DailyBudget {
	d := startOfDay(day)
	for i := range budgets {
		b := &budgets[i]
		start := startOfDay(b.StartDate)
		end := budgetOpenEnd
		if b.EndDate != nil {
			end = *b.EndDate
		}
		if !d.Before(start) && !d.After(endOfDay(end)) {
			return b
		}
	}
	return nil
}
