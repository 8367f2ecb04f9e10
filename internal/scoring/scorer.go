package scoring

import (
	"math"

	"github.com/neo/pwmeter/internal/types"
)

// MaxScore is the upper bound of a strength score.
const MaxScore = 100

// Per-finding penalty and per-class reward.
const (
	PatternPenalty = 5
	ClassReward    = 10
)

// Tier thresholds. A score below the bound belongs to the tier.
const (
	WeakBelow = 30
	FairBelow = 50
	GoodBelow = 75
)

// Input is everything the scorer needs. It does not look at the password itself.
type Input struct {
	Length   int     `json:"length"`
	Classes  int     `json:"classes"`
	Findings int     `json:"findings"`
	Entropy  float64 `json:"entropy"`
}

// Breakdown holds each additive component so callers can explain a score.
type Breakdown struct {
	Length       float64 `json:"length"`
	Variety      float64 `json:"variety"`
	LengthBonus  float64 `json:"length_bonus"`
	Penalty      float64 `json:"penalty"`
	EntropyBonus float64 `json:"entropy_bonus"`
	Total        float64 `json:"total"`
}

// Score returns the clamped strength score.
func Score(in Input) float64 {
	return Explain(in).Total
}

// Explain computes every component and the clamped total.
// The length bonus deliberately stacks on top of the length component.
func Explain(in Input) Breakdown {
	b := Breakdown{
		Length:       lengthPoints(in.Length),
		Variety:      float64(in.Classes * ClassReward),
		LengthBonus:  lengthBonus(in.Length),
		Penalty:      -float64(in.Findings * PatternPenalty),
		EntropyBonus: math.Min(in.Entropy/10, 10),
	}
	sum := b.Length + b.Variety + b.LengthBonus + b.Penalty + b.EntropyBonus
	b.Total = clamp(sum, 0, MaxScore)
	return b
}

func lengthPoints(n int) float64 {
	switch {
	case n >= 12:
		return 30
	case n >= 8:
		return 20
	case n >= 6:
		return 10
	default:
		return float64(n) * 1.5
	}
}

func lengthBonus(n int) float64 {
	switch {
	case n > 16:
		return 20
	case n > 12:
		return 15
	case n > 8:
		return 10
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// TierFor maps a score to its tier.
func TierFor(score float64) types.Tier {
	switch {
	case score < WeakBelow:
		return types.TierWeak
	case score < FairBelow:
		return types.TierFair
	case score < GoodBelow:
		return types.TierGood
	default:
		return types.TierStrong
	}
}
