package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apereira/fluxo/internal/database/repository"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func testProjectionService(t *testing.T) (*ProjectionService, *RecordService) {
	t.Helper()
	records, loader, _ := testRecordService(t)
	projections := &ProjectionService{Loader: loader, Log: testLogger(), Now: fixedNow}
	return projections, records
}

func TestProjectionServiceEmptyDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	projections, _ := testProjectionService(t)

	b, err := projections.UnifiedBalance(ctx)
	require.NoError(t, err)
	require.Zero(t, b.Total)

	be, err := projections.BreakEvenMonth(ctx)
	require.NoError(t, err)
	require.True(t, be.AlreadyPositive)

	points, err := projections.DailyCashFlow(ctx, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, "2026-03-15", points[0].Date)
}

func TestProjectionServiceEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	projections, records := testProjectionService(t)

	_, err := records.AddTransaction(ctx, TransactionInput{
		Date:        time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		Description: "opening balance",
		Amount:      -500,
		Type:        repository.TypeExpense,
	})
	require.NoError(t, err)

	_, err = records.AddRecurring(ctx, RecurringInput{
		Description: "salary",
		Amount:      300,
		DayOfMonth:  1,
		Type:        repository.TypeIncome,
	})
	require.NoError(t, err)

	b, err := projections.UnifiedBalance(ctx)
	require.NoError(t, err)
	require.InDelta(t, -500.00, b.Total, 1e-9)

	monthly, err := projections.GenerateProjection(ctx, 3)
	require.NoError(t, err)
	require.Len(t, monthly, 4)
	require.InDelta(t, -500.00, monthly[0].Balance, 1e-9)
	require.InDelta(t, -200.00, monthly[1].Balance, 1e-9)
	require.InDelta(t, 100.00, monthly[2].Balance, 1e-9)

	be, err := projections.BreakEvenMonth(ctx)
	require.NoError(t, err)
	require.False(t, be.AlreadyPositive)
	require.NotNil(t, be.MonthsUntil)
	require.Equal(t, 2, *be.MonthsUntil)
	require.NotNil(t, be.Month)
	require.Equal(t, "May/26", *be.Month)
}

func TestProjectionServiceBudgetFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	projections, records := testProjectionService(t)

	_, err := records.AddBudget(ctx, BudgetInput{
		Amount:    30,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = records.AddDailyExpense(ctx, DailyExpenseInput{
		Date:   time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		Amount: 12.50,
	})
	require.NoError(t, err)

	points, err := projections.DailyCashFlow(ctx, 1)
	require.NoError(t, err)
	require.InDelta(t, 30.00, points[0].Expense, 1e-9, "budget day")
	require.InDelta(t, 12.50, points[1].Expense, 1e-9, "recorded spend replaces the budget")

	cmp, err := projections.CompareBudgetVsSpent(ctx, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, cmp.Budget)
	require.InDelta(t, 30.00, *cmp.Budget, 1e-9)
	require.InDelta(t, 17.50, cmp.Remaining, 1e-9)
	require.False(t, cmp.HasExceeded)
}

func TestProjectionServiceStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	projections, records := testProjectionService(t)

	_, err := records.AddTransaction(ctx, TransactionInput{
		Date:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Description: "freelance gig",
		Amount:      800,
		Type:        repository.TypeIncome,
	})
	require.NoError(t, err)
	_, err = records.AddDailyExpense(ctx, DailyExpenseInput{
		Date:   time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
		Amount: 40,
	})
	require.NoError(t, err)

	stats, err := projections.DashboardStats(ctx)
	require.NoError(t, err)
	require.InDelta(t, 800.00, stats.CurrentBalance, 1e-9)
	require.Equal(t, 1, stats.TotalTransactions)
	require.InDelta(t, 40.00, stats.MonthlyDailyExpenses, 1e-9)

	total, err := projections.CurrentMonthExpenses(ctx)
	require.NoError(t, err)
	require.InDelta(t, 40.00, total, 1e-9)
}

func TestDailyBudgetSummaryFromService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	projections, records := testProjectionService(t)

	_, err := records.AddBudget(ctx, BudgetInput{
		Amount:    30,
		StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	summary, err := projections.DailyBudgetSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 31, "march")
	for _, day := range summary {
		require.InDelta(t, 30.00, day.Budget, 1e-9, "day %d", day.Day)
	}
}
