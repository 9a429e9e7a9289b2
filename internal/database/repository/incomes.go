package repository

import (
	"context"
	"database/sql"

	"github.com/apereira/fluxo/internal/database"
)

// IncomeRepo handles single and recurring incomes.
type IncomeRepo struct {
	db *sql.DB
}

func NewIncomeRepo(db *sql.DB) *IncomeRepo { return &IncomeRepo{db: db} }

func (r *IncomeRepo) Insert(ctx context.Context, in Income) error {
	now := database.Now()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO incomes(id, description, amount, income_type, frequency, date, day_of_month, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		in.ID, in.Description, in.Amount, in.IncomeType, in.Frequency, in.Date, in.DayOfMonth, now, now)
	return err
}

func (r *IncomeRepo) List(ctx context.Context) ([]Income, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, description, amount, income_type, frequency, date, day_of_month, created_at, updated_at
	FROM incomes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Income
	for rows.Next() {
		var in Income
		if err := rows.Scan(&in.ID, &in.Description, &in.Amount, &in.IncomeType, &in.Frequency, &in.Date, &in.DayOfMonth, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *IncomeRepo) ListByType(ctx context.Context, incomeType string) ([]Income, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Income
	for _, in := range all {
		if in.IncomeType == incomeType {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *IncomeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	return err
}
