package repository

import (
	"context"
	"database/sql"

	"github.com/apereira/fluxo/internal/database"
)

// BudgetRepo handles daily budgets.
type BudgetRepo struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepo { return &BudgetRepo{db: db} }

func (r *BudgetRepo) Insert(ctx context.Context, b DailyBudget) error {
	now := database.Now()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO daily_budgets(id, amount, start_date, end_date, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`,
		b.ID, b.Amount, b.StartDate, b.EndDate, now, now)
	return err
}

// List returns budgets newest-start first. Overlap resolution downstream
// relies on this ordering: the first range containing a date wins.
func (r *BudgetRepo) List(ctx context.Context) ([]DailyBudget, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, amount, start_date, end_date, created_at, updated_at
	FROM daily_budgets ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyBudget
	for rows.Next() {
		var b DailyBudget
		if err := rows.Scan(&b.ID, &b.Amount, &b.StartDate, &b.EndDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BudgetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_budgets WHERE id = ?`, id)
	return err
}
