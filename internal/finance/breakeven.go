package finance

import "time"

// breakEvenHorizonMonths bounds the break-even scan.
const breakEvenHorizonMonths = 12

// BreakEven reports when a negative balance first turns non-negative over
// a 12-month projection. Month and MonthsUntil are nil both when the
// balance is already positive and when it never recovers inside the
// horizon; the latter carries a message and is a terminal answer, not an
// error.
type BreakEven struct {
	AlreadyPositive bool    `json:"alreadyPositive"`
	Month           *string `json:"month"`
	MonthsUntil     *int    `json:"monthsUntil"`
	Message         string  `json:"message,omitempty"`
}

// BreakEvenMonth scans a 12-month projection for the first non-negative
// month after the current one.
func BreakEvenMonth(s Snapshot, now time.Time) BreakEven {
	projection := MonthlyProjection(s, now, breakEvenHorizonMonths)

	if projection[0].Balance >= 0 {
		return BreakEven{AlreadyPositive: true}
	}

	for i := 1; i < len(projection); i++ {
		if projection[i].Balance >= 0 {
			month := projection[i].Month
			monthsUntil := i
			return BreakEven{
				AlreadyPositive: false,
				Month:           &month,
				MonthsUntil:     &monthsUntil,
			}
		}
	}

	return BreakEven{
		AlreadyPositive: false,
		Message:         "balance stays negative beyond the 12-month horizon",
	}
}
