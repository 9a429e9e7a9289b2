package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/apereira/fluxo/internal/database/repository"
)

// Validation limits for user-supplied record fields.
const (
	descriptionMaxLength = 500
	categoryMaxLength    = 100
	amountMin            = -1_000_000_000
	amountMax            = 1_000_000_000
)

// RecordService validates and persists user records. All writes happen
// here; the projection engine only ever reads.
type RecordService struct {
	Transactions  *repository.TransactionRepo
	Incomes       *repository.IncomeRepo
	Recurring     *repository.RecurringRepo
	Budgets       *repository.BudgetRepo
	DailyExpenses *repository.DailyExpenseRepo
	Log           *logrus.Logger
}

func validateText(value string, maxLength int, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s must not be empty", field)
	}
	if len(trimmed) > maxLength {
		return "", fmt.Errorf("%s must be at most %d characters", field, maxLength)
	}
	return trimmed, nil
}

func validateAmount(value float64, field string) error {
	if value < amountMin || value > amountMax {
		return fmt.Errorf("%s must be between %d and %d", field, amountMin, amountMax)
	}
	return nil
}

func validateType(t string) error {
	if t != repository.TypeIncome && t != repository.TypeExpense {
		return fmt.Errorf("invalid type %q: use %s or %s", t, repository.TypeIncome, repository.TypeExpense)
	}
	return nil
}

func validateFrequency(f string) error {
	switch f {
	case repository.FreqDaily, repository.FreqWeekly, repository.FreqBiweekly, repository.FreqMonthly, repository.FreqYearly:
		return nil
	}
	return fmt.Errorf("invalid frequency %q", f)
}

func validateDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("day of month must be between 1 and 31")
	}
	return nil
}

// TransactionInput carries a new one-off transaction.
type TransactionInput struct {
	Date        time.Time
	Description string
	Amount      float64
	Type        string
	Category    string
	ImportHash  string
}

// AddTransaction validates and stores a transaction, minting an ID.
func (s *RecordService) AddTransaction(ctx context.Context, in TransactionInput) (repository.Transaction, error) {
	desc, err := validateText(in.Description, descriptionMaxLength, "description")
	if err != nil {
		return repository.Transaction{}, err
	}
	if err := validateAmount(in.Amount, "amount"); err != nil {
		return repository.Transaction{}, err
	}
	if err := validateType(in.Type); err != nil {
		return repository.Transaction{}, err
	}
	if in.Date.IsZero() {
		return repository.Transaction{}, fmt.Errorf("date is required")
	}

	t := repository.Transaction{
		ID:          uuid.NewString(),
		Date:        in.Date.UTC(),
		Description: desc,
		Amount:      in.Amount,
		Type:        in.Type,
	}
	if in.Category != "" {
		cat, err := validateText(in.Category, categoryMaxLength, "category")
		if err != nil {
			return repository.Transaction{}, err
		}
		t.Category = &cat
	}
	if in.ImportHash != "" {
		if !IsValidHash(in.ImportHash) {
			return repository.Transaction{}, fmt.Errorf("invalid import hash")
		}
		t.ImportHash = &in.ImportHash
	}

	if err := s.Transactions.Insert(ctx, t); err != nil {
		return repository.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	s.Log.WithFields(logrus.Fields{"id": t.ID, "amount": t.Amount}).Info("transaction added")
	return t, nil
}

// IncomeInput carries a new single or recurring income.
type IncomeInput struct {
	Description string
	Amount      float64
	IncomeType  string
	Frequency   string
	Date        *time.Time
	DayOfMonth  *int
}

// AddIncome validates and stores an income. Single incomes need a date;
// recurring ones need a frequency.
func (s *RecordService) AddIncome(ctx context.Context, in IncomeInput) (repository.Income, error) {
	desc, err := validateText(in.Description, descriptionMaxLength, "description")
	if err != nil {
		return repository.Income{}, err
	}
	if in.Amount <= 0 {
		return repository.Income{}, fmt.Errorf("income amount must be positive")
	}
	if in.IncomeType != repository.IncomeSingle && in.IncomeType != repository.IncomeRecurring {
		return repository.Income{}, fmt.Errorf("invalid income type %q: use %s or %s", in.IncomeType, repository.IncomeSingle, repository.IncomeRecurring)
	}
	if in.IncomeType == repository.IncomeRecurring && in.Frequency == "" {
		return repository.Income{}, fmt.Errorf("frequency is required for recurring incomes")
	}
	if in.IncomeType == repository.IncomeSingle && in.Date == nil {
		return repository.Income{}, fmt.Errorf("date is required for single incomes")
	}

	rec := repository.Income{
		ID:          uuid.NewString(),
		Description: desc,
		Amount:      in.Amount,
		IncomeType:  in.IncomeType,
	}
	if in.Frequency != "" {
		if err := validateFrequency(in.Frequency); err != nil {
			return repository.Income{}, err
		}
		freq := in.Frequency
		rec.Frequency = &freq
	}
	if in.Date != nil {
		d := in.Date.UTC()
		rec.Date = &d
	}
	if in.DayOfMonth != nil {
		if err := validateDayOfMonth(*in.DayOfMonth); err != nil {
			return repository.Income{}, err
		}
		rec.DayOfMonth = in.DayOfMonth
	}

	if err := s.Incomes.Insert(ctx, rec); err != nil {
		return repository.Income{}, fmt.Errorf("insert income: %w", err)
	}
	s.Log.WithFields(logrus.Fields{"id": rec.ID, "type": rec.IncomeType}).Info("income added")
	return rec, nil
}

// RecurringInput carries a new recurring transaction.
type RecurringInput struct {
	Description string
	Amount      float64
	DayOfMonth  int
	Type        string
	Frequency   string
	StartDate   *time.Time
	EndDate     *time.Time
}

// AddRecurring validates and stores a recurring transaction. A missing
// frequency defaults to monthly.
func (s *RecordService) AddRecurring(ctx context.Context, in RecurringInput) (repository.RecurringTransaction, error) {
	desc, err := validateText(in.Description, descriptionMaxLength, "description")
	if err != nil {
		return repository.RecurringTransaction{}, err
	}
	if err := validateAmount(in.Amount, "amount"); err != nil {
		return repository.RecurringTransaction{}, err
	}
	if err := validateDayOfMonth(in.DayOfMonth); err != nil {
		return repository.RecurringTransaction{}, err
	}
	if err := validateType(in.Type); err != nil {
		return repository.RecurringTransaction{}, err
	}
	freq := in.Frequency
	if freq == "" {
		freq = repository.FreqMonthly
	}
	if err := validateFrequency(freq); err != nil {
		return repository.RecurringTransaction{}, err
	}

	rt := repository.RecurringTransaction{
		ID:          uuid.NewString(),
		Description: desc,
		Amount:      in.Amount,
		DayOfMonth:  in.DayOfMonth,
		Type:        in.Type,
		Frequency:   freq,
	}
	if in.StartDate != nil {
		d := in.StartDate.UTC()
		rt.StartDate = &d
	}
	if in.EndDate != nil {
		d := in.EndDate.UTC()
		rt.EndDate = &d
	}

	if err := s.Recurring.Insert(ctx, rt); err != nil {
		return repository.RecurringTransaction{}, fmt.Errorf("insert recurring transaction: %w", err)
	}
	s.Log.WithFields(logrus.Fields{"id": rt.ID, "day": rt.DayOfMonth}).Info("recurring transaction added")
	return rt, nil
}

// BudgetInput carries a new daily budget.
type BudgetInput struct {
	Amount    float64
	StartDate time.Time
	EndDate   *time.Time
}

// AddBudget validates and stores a daily budget.
func (s *RecordService) AddBudget(ctx context.Context, in BudgetInput) (repository.DailyBudget, error) {
	if in.Amount <= 0 {
		return repository.DailyBudget{}, fmt.Errorf("budget amount must be positive")
	}
	if in.StartDate.IsZero() {
		return repository.DailyBudget{}, fmt.Errorf("start date is required")
	}

	b := repository.DailyBudget{
		ID:        uuid.NewString(),
		Amount:    in.Amount,
		StartDate: in.StartDate.UTC(),
	}
	if in.EndDate != nil {
		d := in.EndDate.UTC()
		b.EndDate = &d
	}

	if err := s.Budgets.Insert(ctx, b); err != nil {
		return repository.DailyBudget{}, fmt.Errorf("insert daily budget: %w", err)
	}
	s.Log.WithField("id", b.ID).Info("daily budget added")
	return b, nil
}

// DailyExpenseInput carries a new realized daily spend.
type DailyExpenseInput struct {
	Date        time.Time
	Amount      float64
	Description string
	ImportHash  string
}

// AddDailyExpense validates and stores a daily spend. A missing import
// hash is generated from the record's own fields so re-imports dedup.
func (s *RecordService) AddDailyExpense(ctx context.Context, in DailyExpenseInput) (repository.DailyExpense, error) {
	if in.Date.IsZero() {
		return repository.DailyExpense{}, fmt.Errorf("date is required")
	}
	if in.Amount <= 0 {
		return repository.DailyExpense{}, fmt.Errorf("expense amount must be positive")
	}

	e := repository.DailyExpense{
		ID:     uuid.NewString(),
		Date:   in.Date.UTC(),
		Amount: in.Amount,
	}
	desc := "daily expense"
	if in.Description != "" {
		d, err := validateText(in.Description, descriptionMaxLength, "description")
		if err != nil {
			return repository.DailyExpense{}, err
		}
		e.Description = &d
		desc = d
	}
	hash := in.ImportHash
	if hash == "" {
		hash = RecordHash(e.Date, desc, e.Amount)
	} else if !IsValidHash(hash) {
		return repository.DailyExpense{}, fmt.Errorf("invalid import hash")
	}
	e.ImportHash = &hash

	if err := s.DailyExpenses.Insert(ctx, e); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return repository.DailyExpense{}, fmt.Errorf("daily expense already recorded: %w", err)
		}
		return repository.DailyExpense{}, fmt.Errorf("insert daily expense: %w", err)
	}
	s.Log.WithFields(logrus.Fields{"id": e.ID, "date": e.Date.Format(time.DateOnly)}).Info("daily expense added")
	return e, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *RecordService) DeleteTransaction(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("transaction id is required")
	}
	return s.Transactions.Delete(ctx, id)
}

// DeleteIncome removes an income by ID.
func (s *RecordService) DeleteIncome(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("income id is required")
	}
	return s.Incomes.Delete(ctx, id)
}

// DeleteRecurring removes a recurring transaction by ID.
func (s *RecordService) DeleteRecurring(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("recurring transaction id is required")
	}
	return s.Recurring.Delete(ctx, id)
}

// DeleteBudget removes a daily budget by ID.
func (s *RecordService) DeleteBudget(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("budget id is required")
	}
	return s.Budgets.Delete(ctx, id)
}

// DeleteDailyExpense removes a daily spend by ID.
func (s *RecordService) DeleteDailyExpense(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("daily expense id is required")
	}
	return s.DailyExpenses.Delete(ctx, id)
}
