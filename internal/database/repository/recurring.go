package repository

import (
	"context"
	"database/sql"

	"github.com/apereira/fluxo/internal/database"
)

// RecurringRepo handles recurring transactions.
type RecurringRepo struct {
	db *sql.DB
}

func NewRecurringRepo(db *sql.DB) *RecurringRepo { return &RecurringRepo{db: db} }

func (r *RecurringRepo) Insert(ctx context.Context, rt RecurringTransaction) error {
	var freq *string
	if rt.Frequency != "" {
		freq = &rt.Frequency
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO recurring_transactions(id, description, amount, day_of_month, type, frequency, start_date, end_date, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		rt.ID, rt.Description, rt.Amount, rt.DayOfMonth, rt.Type, freq, rt.StartDate, rt.EndDate, database.Now())
	return err
}

func (r *RecurringRepo) List(ctx context.Context) ([]RecurringTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, description, amount, day_of_month, type, frequency, start_date, end_date, created_at
	FROM recurring_transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecurringTransaction
	for rows.Next() {
		var rt RecurringTransaction
		var freq *string
		if err := rows.Scan(&rt.ID, &rt.Description, &rt.Amount, &rt.DayOfMonth, &rt.Type, &freq, &rt.StartDate, &rt.EndDate, &rt.CreatedAt); err != nil {
			return nil, err
		}
		// records written before frequency existed default to monthly
		rt.Frequency = FreqMonthly
		if freq != nil && *freq != "" {
			rt.Frequency = *freq
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *RecurringRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recurring_transactions WHERE id = ?`, id)
	return err
}
