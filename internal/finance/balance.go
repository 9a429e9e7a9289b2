package finance

import (
	"time"

	"github.com/apereira/fluxo/internal/database/repository"
)

// BalanceBreakdown splits the unified balance by source. Each figure is
// rounded independently, so the parts may differ from the total by a
// rounding epsilon; the total is authoritative.
type BalanceBreakdown struct {
	FromTransactions  float64 `json:"fromTransactions"`
	FromIncomes       float64 `json:"fromIncomes"`
	FromDailyExpenses float64 `json:"fromDailyExpenses"`
}

// Balance is the consolidated current balance across all record sources.
type Balance struct {
	Total     float64          `json:"balance"`
	Breakdown BalanceBreakdown `json:"breakdown"`
}

// UnifiedBalance consolidates every realized record into the current
// balance: all signed transaction amounts, single incomes dated up to the
// end of now's day, minus all recorded daily spends. Recurring incomes are
// excluded; they only matter to projections.
func UnifiedBalance(s Snapshot, now time.Time) Balance {
	var b Balance

	for _, t := range s.Transactions {
		b.Total += t.Amount
		b.Breakdown.FromTransactions += t.Amount
	}

	cutoff := endOfDay(now)
	for _, in := range s.Incomes {
		if in.IncomeType == repository.IncomeSingle && in.Date != nil && !in.Date.After(cutoff) {
			b.Total += in.Amount
			b.Breakdown.FromIncomes += in.Amount
		}
	}

	for _, e := range s.DailyExpenses {
		b.Total -= e.Amount
		b.Breakdown.FromDailyExpenses -= e.Amount
	}

	b.Total = Round2(b.Total)
	b.Breakdown.FromTransactions = Round2(b.Breakdown.FromTransactions)
	b.Breakdown.FromIncomes = Round2(b.Breakdown.FromIncomes)
	b.Breakdown.FromDailyExpenses = Round2(b.Breakdown.FromDailyExpenses)
	return b
}

// TransactionBalance sums the signed one-off transactions only.
func TransactionBalance(s Snapshot) float64 {
	var total float64
	for _, t := range s.Transactions {
		total += t.Amount
	}
	return total
}

// IncomeTotals summarizes configured incomes. MonthlyProjection folds
// recurring incomes to a monthly figure on a fixed 30-day basis; the
// monthly forecast uses the target month's real day count instead. Both
// bases are kept as-is.
type IncomeTotals struct {
	Total             float64 `json:"total"`
	Single            float64 `json:"single"`
	Recurring         float64 `json:"recurring"`
	MonthlyProjection float64 `json:"monthlyProjection"`
}

// TotalIncomes sums single and recurring incomes and projects the
// recurring portion to a monthly equivalent.
func TotalIncomes(s Snapshot) IncomeTotals {
	var t IncomeTotals
	for _, in := range s.Incomes {
		switch in.IncomeType {
		case repository.IncomeSingle:
			t.Single += in.Amount
		case repository.IncomeRecurring:
			t.Recurring += in.Amount
			if in.Frequency != nil {
				t.MonthlyProjection += MonthlyEquivalent(in.Amount, *in.Frequency, 30)
			}
		}
	}
	t.Total = Round2(t.Single + t.Recurring)
	t.Single = Round2(t.Single)
	t.Recurring = Round2(t.Recurring)
	t.MonthlyProjection = Round2(t.MonthlyProjection)
	return t
}

// CurrentMonthExpenses totals realized spending inside now's calendar
// month: recorded daily spends plus one-off expense transactions.
func CurrentMonthExpenses(s Snapshot, now time.Time) float64 {
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := endOfDay(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC))

	var total float64
	for _, e := range s.DailyExpenses {
		if !e.Date.Before(firstDay) && !e.Date.After(lastDay) {
			total += e.Amount
		}
	}
	for _, t := range s.Transactions {
		if t.Amount < 0 && !t.Date.Before(firstDay) && !t.Date.After(lastDay) {
			total += -t.Amount
		}
	}
	return Round2(total)
}
