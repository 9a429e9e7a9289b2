package service

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/apereira/fluxo/internal/database"
	"github.com/apereira/fluxo/internal/database/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testRecordService(t *testing.T) (*RecordService, *SnapshotLoader, *sql.DB) {
	t.Helper()
	db := testDB(t)

	txRepo := repository.NewTransactionRepo(db)
	incomeRepo := repository.NewIncomeRepo(db)
	recurringRepo := repository.NewRecurringRepo(db)
	budgetRepo := repository.NewBudgetRepo(db)
	expenseRepo := repository.NewDailyExpenseRepo(db)

	records := &RecordService{
		Transactions:  txRepo,
		Incomes:       incomeRepo,
		Recurring:     recurringRepo,
		Budgets:       budgetRepo,
		DailyExpenses: expenseRepo,
		Log:           testLogger(),
	}
	loader := &SnapshotLoader{
		Transactions:  txRepo,
		Incomes:       incomeRepo,
		Recurring:     recurringRepo,
		Budgets:       budgetRepo,
		DailyExpenses: expenseRepo,
	}
	return records, loader, db
}

func TestAddTransactionRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	records, loader, _ := testRecordService(t)

	tx, err := records.AddTransaction(ctx, TransactionInput{
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Description: "  salary  ",
		Amount:      3500,
		Type:        repository.TypeIncome,
		Category:    "work",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tx.ID)
	require.Equal(t, "salary", tx.Description)

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	require.Equal(t, tx.ID, snap.Transactions[0].ID)
	require.NotNil(t, snap.Transactions[0].Category)
	require.Equal(t, "work", *snap.Transactions[0].Category)
}

func TestAddTransactionValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := records.AddTransaction(ctx, TransactionInput{Date: date, Description: "   ", Amount: 10, Type: repository.TypeIncome})
	require.ErrorContains(t, err, "description")

	_, err = records.AddTransaction(ctx, TransactionInput{Date: date, Description: "x", Amount: 2_000_000_000, Type: repository.TypeIncome})
	require.ErrorContains(t, err, "amount")

	_, err = records.AddTransaction(ctx, TransactionInput{Date: date, Description: "x", Amount: 10, Type: "transfer"})
	require.ErrorContains(t, err, "type")

	_, err = records.AddTransaction(ctx, TransactionInput{Description: "x", Amount: 10, Type: repository.TypeIncome})
	require.ErrorContains(t, err, "date")

	_, err = records.AddTransaction(ctx, TransactionInput{Date: date, Description: "x", Amount: 10, Type: repository.TypeIncome, ImportHash: "bogus"})
	require.ErrorContains(t, err, "import hash")
}

func TestAddIncomeSingleRequiresDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)

	_, err := records.AddIncome(ctx, IncomeInput{Description: "bonus", Amount: 100, IncomeType: repository.IncomeSingle})
	require.ErrorContains(t, err, "date")

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	in, err := records.AddIncome(ctx, IncomeInput{Description: "bonus", Amount: 100, IncomeType: repository.IncomeSingle, Date: &date})
	require.NoError(t, err)
	require.Equal(t, repository.IncomeSingle, in.IncomeType)
}

func TestAddIncomeRecurringRequiresFrequency(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, loader, _ := testRecordService(t)

	_, err := records.AddIncome(ctx, IncomeInput{Description: "salary", Amount: 5000, IncomeType: repository.IncomeRecurring})
	require.ErrorContains(t, err, "frequency")

	_, err = records.AddIncome(ctx, IncomeInput{Description: "salary", Amount: 5000, IncomeType: repository.IncomeRecurring, Frequency: "hourly"})
	require.ErrorContains(t, err, "frequency")

	day := 5
	in, err := records.AddIncome(ctx, IncomeInput{Description: "salary", Amount: 5000, IncomeType: repository.IncomeRecurring, Frequency: repository.FreqMonthly, DayOfMonth: &day})
	require.NoError(t, err)

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Incomes, 1)
	require.Equal(t, in.ID, snap.Incomes[0].ID)
	require.NotNil(t, snap.Incomes[0].DayOfMonth)
	require.Equal(t, 5, *snap.Incomes[0].DayOfMonth)
}

func TestAddIncomeRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)

	_, err := records.AddIncome(ctx, IncomeInput{Description: "x", Amount: 0, IncomeType: repository.IncomeSingle})
	require.ErrorContains(t, err, "positive")
	_, err = records.AddIncome(ctx, IncomeInput{Description: "x", Amount: -5, IncomeType: repository.IncomeSingle})
	require.ErrorContains(t, err, "positive")
}

func TestAddRecurringDefaultsToMonthly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, loader, _ := testRecordService(t)

	rt, err := records.AddRecurring(ctx, RecurringInput{
		Description: "rent",
		Amount:      -1200,
		DayOfMonth:  1,
		Type:        repository.TypeExpense,
	})
	require.NoError(t, err)
	require.Equal(t, repository.FreqMonthly, rt.Frequency)

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Recurring, 1)
	require.Equal(t, repository.FreqMonthly, snap.Recurring[0].Frequency)
}

func TestAddRecurringValidatesDayOfMonth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)

	_, err := records.AddRecurring(ctx, RecurringInput{Description: "rent", Amount: -1200, DayOfMonth: 0, Type: repository.TypeExpense})
	require.ErrorContains(t, err, "day of month")
	_, err = records.AddRecurring(ctx, RecurringInput{Description: "rent", Amount: -1200, DayOfMonth: 32, Type: repository.TypeExpense})
	require.ErrorContains(t, err, "day of month")
}

func TestAddBudgetOpenEnded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, loader, _ := testRecordService(t)

	_, err := records.AddBudget(ctx, BudgetInput{Amount: 0, StartDate: time.Now()})
	require.ErrorContains(t, err, "positive")

	b, err := records.AddBudget(ctx, BudgetInput{Amount: 30, StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Nil(t, b.EndDate)

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.DailyBudgets, 1)
	require.Nil(t, snap.DailyBudgets[0].EndDate)
}

func TestAddDailyExpenseDeduplicatesOnRepeat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)

	in := DailyExpenseInput{
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Amount:      25.40,
		Description: "lunch",
	}
	first, err := records.AddDailyExpense(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, first.ImportHash)
	require.True(t, IsValidHash(*first.ImportHash))

	_, err = records.AddDailyExpense(ctx, in)
	require.ErrorContains(t, err, "already recorded")
}

func TestDeleteRequiresID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, _, _ := testRecordService(t)

	require.ErrorContains(t, records.DeleteTransaction(ctx, ""), "id")
	require.ErrorContains(t, records.DeleteIncome(ctx, "  "), "id")
	require.ErrorContains(t, records.DeleteRecurring(ctx, ""), "id")
	require.ErrorContains(t, records.DeleteBudget(ctx, ""), "id")
	require.ErrorContains(t, records.DeleteDailyExpense(ctx, ""), "id")
}

func TestDeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, loader, _ := testRecordService(t)

	tx, err := records.AddTransaction(ctx, TransactionInput{
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Description: "one-off",
		Amount:      -10,
		Type:        repository.TypeExpense,
	})
	require.NoError(t, err)
	require.NoError(t, records.DeleteTransaction(ctx, tx.ID))

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Transactions)
}

func TestMaintenanceResetClearsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	records, loader, db := testRecordService(t)

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	_, err := records.AddTransaction(ctx, TransactionInput{Date: date, Description: "t", Amount: 1, Type: repository.TypeIncome})
	require.NoError(t, err)
	_, err = records.AddIncome(ctx, IncomeInput{Description: "i", Amount: 1, IncomeType: repository.IncomeSingle, Date: &date})
	require.NoError(t, err)
	_, err = records.AddRecurring(ctx, RecurringInput{Description: "r", Amount: -1, DayOfMonth: 1, Type: repository.TypeExpense})
	require.NoError(t, err)
	_, err = records.AddBudget(ctx, BudgetInput{Amount: 30, StartDate: date})
	require.NoError(t, err)
	_, err = records.AddDailyExpense(ctx, DailyExpenseInput{Date: date, Amount: 5})
	require.NoError(t, err)

	maintenance := &MaintenanceService{DB: db}
	require.NoError(t, maintenance.Reset(ctx))

	snap, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Transactions)
	require.Empty(t, snap.Incomes)
	require.Empty(t, snap.Recurring)
	require.Empty(t, snap.DailyBudgets)
	require.Empty(t, snap.DailyExpenses)
}
