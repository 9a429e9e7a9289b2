package repository

import "time"

// Record type tags.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	IncomeSingle    = "single"
	IncomeRecurring = "recurring"

	FreqDaily    = "daily"
	FreqWeekly   = "weekly"
	FreqBiweekly = "biweekly"
	FreqMonthly  = "monthly"
	FreqYearly   = "yearly"
)

// Transaction represents a one-off cash movement. Amount is signed:
// positive for income, negative for expense.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      float64
	Type        string
	Category    *string
	ImportHash  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Income represents a single or recurring income. Amount is an unsigned
// magnitude; Date is set for single incomes, Frequency for recurring ones.
type Income struct {
	ID          string
	Description string
	Amount      float64
	IncomeType  string
	Frequency   *string
	Date        *time.Time
	DayOfMonth  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecurringTransaction repeats on a fixed day of month while active.
// Amount is signed like Transaction. Frequency defaults to monthly at scan
// time so consumers never see an empty value.
type RecurringTransaction struct {
	ID          string
	Description string
	Amount      float64
	DayOfMonth  int
	Type        string
	Frequency   string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

// DailyBudget defines a per-day spending allowance for a date range.
// A nil EndDate means open-ended.
type DailyBudget struct {
	ID        string
	Amount    float64
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyExpense records the realized spend for one calendar day as an
// unsigned magnitude.
type DailyExpense struct {
	ID          string
	Date        time.Time
	Amount      float64
	Description *string
	ImportHash  *string
	CreatedAt   time.Time
}
