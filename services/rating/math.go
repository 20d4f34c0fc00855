package rating

import "math"

// Tolerance is the largest difference at which two averages are considered equal.
const Tolerance = 1e-9

// IncrementalAverage folds one new rating into an existing average of count ratings.
func IncrementalAverage(average float64, count, newRating int) float64 {
	n := float64(count)
	return (average*n + float64(newRating)) / (n + 1)
}

// FullAverage is the plain mean of count ratings summing to sum; 0 when there are none.
func FullAverage(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// Equal compares two averages within Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
