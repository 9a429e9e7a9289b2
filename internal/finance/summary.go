package finance

import "time"

// Stats is the dashboard headline figures.
type Stats struct {
	CurrentBalance       float64  `json:"currentBalance"`
	TotalIncomes         int      `json:"totalIncomes"`
	TotalRecurring       int      `json:"totalRecurring"`
	TotalTransactions    int      `json:"totalTransactions"`
	MonthlyDailyExpenses float64  `json:"monthlyDailyExpenses"`
	MonthlyForecast      Forecast `json:"monthlyForecast"`
}

// DashboardStats summarizes record counts, the transaction balance,
// month-to-date daily spend and the current month's forecast.
func DashboardStats(s Snapshot, now time.Time) Stats {
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var monthlyDaily float64
	for _, e := range s.DailyExpenses {
		if !e.Date.Before(firstDayOfMonth) {
			monthlyDaily += e.Amount
		}
	}

	return Stats{
		CurrentBalance:       Round2(TransactionBalance(s)),
		TotalIncomes:         len(s.Incomes),
		TotalRecurring:       len(s.Recurring),
		TotalTransactions:    len(s.Transactions),
		MonthlyDailyExpenses: Round2(monthlyDaily),
		MonthlyForecast:      MonthlyForecast(s, now.Year(), now.Month()),
	}
}

// DaySummary compares one day's budget against its realized spend.
type DaySummary struct {
	Date        string  `json:"date"`
	Day         int     `json:"day"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	HasExceeded bool    `json:"hasExceeded"`
}

// DailyBudgetSummary reports budget vs spend for every day of now's month.
func DailyBudgetSummary(s Snapshot, now time.Time) []DaySummary {
	year, month := now.Year(), now.Month()
	days := daysInMonth(year, month)

	summary := make([]DaySummary, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		var budget float64
		if b := activeBudgetFor(s.DailyBudgets, date); b != nil {
			budget = b.Amount
		}

		var spent float64
		for _, e := range s.DailyExpenses {
			if sameDay(e.Date, date) {
				spent += e.Amount
			}
		}

		remaining := budget - spent
		summary = append(summary, DaySummary{
			Date:        date.Format(time.DateOnly),
			Day:         day,
			Budget:      Round2(budget),
			Spent:       Round2(spent),
			Remaining:   Round2(remaining),
			HasExceeded: remaining < 0,
		})
	}
	return summary
}

// BudgetComparison is the budget-vs-spent answer for a single date.
// Budget is nil when no budget covers the date.
type BudgetComparison struct {
	Budget      *float64 `json:"budget"`
	Spent       float64  `json:"spent"`
	Remaining   float64  `json:"remaining"`
	HasExceeded bool     `json:"hasExceeded"`
}

// CompareBudgetVsSpent resolves the active budget for a date and nets the
// day's recorded spends against it.
func CompareBudgetVsSpent(s Snapshot, date time.Time) BudgetComparison {
	var budget float64
	var budgetSet *float64
	if b := activeBudgetFor(s.DailyBudgets, date); b != nil {
		budget = b.Amount
		budgetSet = &b.Amount
	}

	var spent float64
	for _, e := range s.DailyExpenses {
		if sameDay(e.Date, date) {
			spent += e.Amount
		}
	}

	remaining := budget - spent
	return BudgetComparison{
		Budget:      budgetSet,
		Spent:       Round2(spent),
		Remaining:   Round2(remaining),
		HasExceeded: remaining < 0,
	}
}
