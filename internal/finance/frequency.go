package finance

import (
	"time"

	"github.com/apereira/fluxo/internal/database/repository"
)

// MonthlyEquivalent converts a recurring amount into its contribution to a
// month with the given day count, using fixed multipliers:
// monthly x1, weekly x4, biweekly x2, daily x daysInMonth, yearly /12.
// Weekly and biweekly are deliberate approximations, not calendar-exact
// week counts; downstream figures depend on these exact factors.
func MonthlyEquivalent(amount float64, frequency string, daysInMonth int) float64 {
	switch frequency {
	case repository.FreqMonthly:
		return amount
	case repository.FreqWeekly:
		return amount * 4
	case repository.FreqBiweekly:
		return amount * 2
	case repository.FreqDaily:
		return amount * float64(daysInMonth)
	case repository.FreqYearly:
		return amount / 12
	}
	return 0
}

// dailyIncomeContribution returns the amount a recurring income adds to one
// calendar day. Only monthly (on its day of month) and daily frequencies
// produce day-level events; weekly, biweekly and yearly incomes are not
// evaluated at daily granularity even though the monthly forecast folds
// them in. That divergence is long-standing observed behavior.
func dailyIncomeContribution(in repository.Income, day time.Time) float64 {
	if in.Frequency == nil {
		return 0
	}
	switch *in.Frequency {
	case repository.FreqMonthly:
		if in.DayOfMonth != nil && *in.DayOfMonth == day.Day() {
			return in.Amount
		}
	case repository.FreqDaily:
		return in.Amount
	}
	return 0
}
