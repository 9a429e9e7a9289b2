package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/apereira/fluxo/internal/database"
)

// DailyExpenseRepo handles realized daily spends.
type DailyExpenseRepo struct {
	db *sql.DB
}

func NewDailyExpenseRepo(db *sql.DB) *DailyExpenseRepo { return &DailyExpenseRepo{db: db} }

func (r *DailyExpenseRepo) Insert(ctx context.Context, e DailyExpense) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO daily_expenses(id, date, amount, description, import_hash, created_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`,
		e.ID, e.Date, e.Amount, e.Description, e.ImportHash, database.Now())
	return err
}

func (r *DailyExpenseRepo) List(ctx context.Context) ([]DailyExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, date, amount, description, import_hash, created_at
	FROM daily_expenses ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyExpense
	for rows.Next() {
		var e DailyExpense
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.ImportHash, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListByDate returns expenses recorded for one calendar day.
func (r *DailyExpenseRepo) ListByDate(ctx context.Context, day time.Time) ([]DailyExpense, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, date, amount, description, import_hash, created_at
	FROM daily_expenses WHERE date >= ? AND date < ? ORDER BY date DESC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyExpense
	for rows.Next() {
		var e DailyExpense
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Description, &e.ImportHash, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *DailyExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_expenses WHERE id = ?`, id)
	return err
}

// ExistsByImportHash reports whether an imported row with this hash is already stored.
func (r *DailyExpenseRepo) ExistsByImportHash(ctx context.Context, hash string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_expenses WHERE import_hash = ?`, hash).Scan(&n)
	return n > 0, err
}
