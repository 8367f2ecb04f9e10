package entropy

import (
	"fmt"
	"math"
	"strconv"
)

// GuessesPerSecond is the assumed offline attacker throughput (commodity GPU).
const GuessesPerSecond = 1e9

const (
	secondsPerMinute       = 60
	secondsPerHour         = 3600
	secondsPerDay          = 86400
	secondsPerYear         = 31536000
	secondsPerBillionYears = 31536000000
	exponentThreshold      = 1e21
)

// CrackSeconds returns the time to exhaust a 2^bits keyspace.
func CrackSeconds(bits float64) float64 {
	return math.Pow(2, bits) / GuessesPerSecond
}

// CrackTime renders the crack time for an entropy estimate.
func CrackTime(bits float64) string {
	return FormatDuration(CrackSeconds(bits))
}

// FormatDuration buckets seconds into the first unit whose upper bound is
// strictly greater than the value.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "Instant"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%d seconds", round(seconds))
	case seconds < secondsPerHour:
		return fmt.Sprintf("%d minutes", round(seconds/secondsPerMinute))
	case seconds < secondsPerDay:
		return fmt.Sprintf("%d hours", round(seconds/secondsPerHour))
	case seconds < secondsPerYear:
		return fmt.Sprintf("%d days", round(seconds/secondsPerDay))
	case seconds < secondsPerBillionYears:
		return fmt.Sprintf("%d years", round(seconds/secondsPerYear))
	}

	return formatBillions(seconds/secondsPerBillionYears) + " billion years"
}

// formatBillions renders one decimal place below 1e21 and shortest exponent
// form from there up.
func formatBillions(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= exponentThreshold:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
