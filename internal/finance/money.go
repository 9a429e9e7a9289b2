package finance

import "math"

// Round2 rounds to two decimal places. Aggregations round after every step,
// matching the stored-record precision, so results stay re-derivable.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
