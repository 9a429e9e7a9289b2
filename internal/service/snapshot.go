package service

import (
	"context"
	"fmt"

	"github.com/apereira/fluxo/internal/database/repository"
	"github.com/apereira/fluxo/internal/finance"
)

// SnapshotLoader reads all five record collections once per top-level call
// so every sub-computation of that call sees the same data.
type SnapshotLoader struct {
	Transactions  *repository.TransactionRepo
	Incomes       *repository.IncomeRepo
	Recurring     *repository.RecurringRepo
	Budgets       *repository.BudgetRepo
	DailyExpenses *repository.DailyExpenseRepo
}

// Load fetches a consistent snapshot. One read attempt per collection; any
// failure aborts the snapshot.
func (l *SnapshotLoader) Load(ctx context.Context) (finance.Snapshot, error) {
	var s finance.Snapshot
	var err error

	if s.Transactions, err = l.Transactions.List(ctx, repository.TransactionFilters{}); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load transactions: %w", err)
	}
	if s.Incomes, err = l.Incomes.List(ctx); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load incomes: %w", err)
	}
	if s.Recurring, err = l.Recurring.List(ctx); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load recurring transactions: %w", err)
	}
	if s.DailyBudgets, err = l.Budgets.List(ctx); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load daily budgets: %w", err)
	}
	if s.DailyExpenses, err = l.DailyExpenses.List(ctx); err != nil {
		return finance.Snapshot{}, fmt.Errorf("load daily expenses: %w", err)
	}
	return s, nil
}
