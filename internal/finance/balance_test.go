package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apereira/fluxo/internal/database/repository"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestUnifiedBalanceCombinesAllSources(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	s := Snapshot{
		Transactions: []repository.Transaction{
			{ID: "t1", Date: now.AddDate(0, 0, -3), Amount: 1000, Type: repository.TypeIncome},
			{ID: "t2", Date: now.AddDate(0, 0, -2), Amount: -250.50, Type: repository.TypeExpense},
		},
		Incomes: []repository.Income{
			{ID: "i1", IncomeType: repository.IncomeSingle, Amount: 300, Date: datePtr(2026, time.March, 10)},
		},
		DailyExpenses: []repository.DailyExpense{
			{ID: "e1", Date: now.AddDate(0, 0, -1), Amount: 49.50},
		},
	}

	b := UnifiedBalance(s, now)
	require.InDelta(t, 1000.00, b.Total, 1e-9)
	require.InDelta(t, 749.50, b.Breakdown.FromTransactions, 1e-9)
	require.InDelta(t, 300.00, b.Breakdown.FromIncomes, 1e-9)
	require.InDelta(t, -49.50, b.Breakdown.FromDailyExpenses, 1e-9)
}

func TestUnifiedBalanceIncludesIncomeDatedToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	s := Snapshot{
		Incomes: []repository.Income{
			{ID: "i1", IncomeType: repository.IncomeSingle, Amount: 100, Date: datePtr(2026, time.March, 15)},
			{ID: "i2", IncomeType: repository.IncomeSingle, Amount: 100, Date: datePtr(2026, time.March, 16)},
		},
	}

	b := UnifiedBalance(s, now)
	require.InDelta(t, 100.00, b.Total, 1e-9, "today counts, tomorrow does not")
}

func TestUnifiedBalanceExcludesRecurringIncomes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := Snapshot{
		Incomes: []repository.Income{
			{ID: "i1", IncomeType: repository.IncomeRecurring, Amount: 5000, Frequency: strPtr(repository.FreqMonthly), DayOfMonth: intPtr(1)},
		},
	}

	require.Zero(t, UnifiedBalance(s, now).Total)
}

func TestUnifiedBalanceRoundsEachFigure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := Snapshot{
		Transactions: []repository.Transaction{
			{ID: "t1", Date: now, Amount: 0.1, Type: repository.TypeIncome},
			{ID: "t2", Date: now, Amount: 0.2, Type: repository.TypeIncome},
		},
	}

	b := UnifiedBalance(s, now)
	require.Equal(t, 0.3, b.Total)
	require.Equal(t, 0.3, b.Breakdown.FromTransactions)
}

func TestUnifiedBalanceIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := Snapshot{
		Transactions: []repository.Transaction{
			{ID: "t1", Date: now.AddDate(0, 0, -1), Amount: 123.45, Type: repository.TypeIncome},
		},
		DailyExpenses: []repository.DailyExpense{
			{ID: "e1", Date: now.AddDate(0, 0, -1), Amount: 23.45},
		},
	}

	first := UnifiedBalance(s, now)
	second := UnifiedBalance(s, now)
	require.Equal(t, first, second)
}

func TestTotalIncomesWeeklyFoldsTimesFour(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Incomes: []repository.Income{
			{ID: "i1", IncomeType: repository.IncomeRecurring, Amount: 100, Frequency: strPtr(repository.FreqWeekly)},
		},
	}

	totals := TotalIncomes(s)
	require.InDelta(t, 100.00, totals.Recurring, 1e-9)
	require.InDelta(t, 400.00, totals.MonthlyProjection, 1e-9)
}

func TestTotalIncomesMixesSingleAndRecurring(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Incomes: []repository.Income{
			{ID: "i1", IncomeType: repository.IncomeSingle, Amount: 250, Date: datePtr(2026, time.January, 5)},
			{ID: "i2", IncomeType: repository.IncomeRecurring, Amount: 1200, Frequency: strPtr(repository.FreqYearly)},
			{ID: "i3", IncomeType: repository.IncomeRecurring, Amount: 10, Frequency: strPtr(repository.FreqDaily)},
		},
	}

	totals := TotalIncomes(s)
	require.InDelta(t, 250.00, totals.Single, 1e-9)
	require.InDelta(t, 1210.00, totals.Recurring, 1e-9)
	require.InDelta(t, 1460.00, totals.Total, 1e-9)
	// yearly/12 + daily on the fixed 30-day basis
	require.InDelta(t, 400.00, totals.MonthlyProjection, 1e-9)
}

func TestCurrentMonthExpensesCountsSpendsAndExpenseTransactions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	s := Snapshot{
		Transactions: []repository.Transaction{
			{ID: "t1", Date: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), Amount: -80, Type: repository.TypeExpense},
			{ID: "t2", Date: time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC), Amount: -999, Type: repository.TypeExpense},
			{ID: "t3", Date: time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), Amount: 500, Type: repository.TypeIncome},
		},
		DailyExpenses: []repository.DailyExpense{
			{ID: "e1", Date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), Amount: 20},
			{ID: "e2", Date: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), Amount: 77},
		},
	}

	require.InDelta(t, 100.00, CurrentMonthExpenses(s, now), 1e-9)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.3, Round2(0.1+0.2))
	require.Equal(t, -12.35, Round2(-12.345000001))
	require.Equal(t, 100.0, Round2(99.999))
}
