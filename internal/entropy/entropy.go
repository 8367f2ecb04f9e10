// Package entropy estimates the keyspace of a password from the character
// classes it uses and turns that estimate into a brute-force crack time.
package entropy

import (
	"math"

	"github.com/neo/pwmeter/internal/types"
)

// Nominal number of characters per class. Special is a fixed size for the
// printable ASCII symbols, not the count actually present in the password.
const (
	LowerPool   = 26
	UpperPool   = 26
	DigitPool   = 10
	SpecialPool = 32
)

// ClassPool returns the nominal pool size for a single class.
func ClassPool(c types.CharClass) int {
	switch c {
	case types.CharClassLower:
		return LowerPool
	case types.CharClassUpper:
		return UpperPool
	case types.CharClassDigit:
		return DigitPool
	case types.CharClassSpecial:
		return SpecialPool
	default:
		return 0
	}
}

// PoolSize sums the nominal pool of every class present. Duplicates count once.
func PoolSize(classes []types.CharClass) int {
	seen := make(map[types.CharClass]bool, len(classes))
	pool := 0
	for _, c := range classes {
		if seen[c] {
			continue
		}
		seen[c] = true
		pool += ClassPool(c)
	}
	return pool
}

// Estimate returns length * log2(pool) bits, or 0 when the pool is empty.
func Estimate(length, pool int) float64 {
	if pool <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(pool))
}
