// Package analyzer is the password analysis pipeline. It extracts character
// features, estimates entropy, detects weak patterns, scores the result and
// assembles a report. Every call is independent and deterministic.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/neo/pwmeter/internal/entropy"
	"github.com/neo/pwmeter/internal/patterns"
	"github.com/neo/pwmeter/internal/scoring"
	"github.com/neo/pwmeter/internal/types"
)

// DefaultMaxLength is the input ceiling hosts apply before calling Analyze.
const DefaultMaxLength = 4096

// ErrTooLong is returned by Guard for inputs over the ceiling.
var ErrTooLong = errors.New("password exceeds maximum length")

// Result is the immutable outcome of one analysis. For an empty password only
// State is set.
type Result struct {
	State        types.State        `json:"state"`
	Score        float64            `json:"score"`
	Tier         types.Tier         `json:"tier,omitempty"`
	Entropy      float64            `json:"entropy"`
	CrackTime    string             `json:"crack_time,omitempty"`
	Variety      []types.CharClass  `json:"variety,omitempty"`
	Findings     []string           `json:"findings"`
	Requirements []Requirement      `json:"requirements,omitempty"`
	Breakdown    *scoring.Breakdown `json:"breakdown,omitempty"`
	Report       *Report            `json:"report,omitempty"`
}

// Idle reports whether the result is the reset state.
func (r Result) Idle() bool {
	return r.State == types.StateIdle
}

// Analyze runs the full pipeline.
func Analyze(password string) Result {
	if password == "" {
		return Result{State: types.StateIdle}
	}

	features := Extract(password)
	classes := features.Classes()
	bits := entropy.Estimate(features.Length, entropy.PoolSize(classes))
	findings := patterns.Detect(password)

	breakdown := scoring.Explain(scoring.Input{
		Length:   features.Length,
		Classes:  len(classes),
		Findings: len(findings),
		Entropy:  bits,
	})
	crackTime := entropy.CrackTime(bits)
	report := BuildReport(features, crackTime, findings)

	return Result{
		State:        types.StateAnalyzing,
		Score:        breakdown.Total,
		Tier:         scoring.TierFor(breakdown.Total),
		Entropy:      bits,
		CrackTime:    crackTime,
		Variety:      classes,
		Findings:     findings,
		Requirements: features.Requirements(),
		Breakdown:    &breakdown,
		Report:       &report,
	}
}

// Guard enforces the host-side input ceiling in UTF-16 code units. maxLen <= 0
// disables the check.
func Guard(password string, maxLen int) error {
	if maxLen <= 0 {
		return nil
	}
	if n := types.CodeUnits(password); n > maxLen {
		return fmt.Errorf("%w: %d > %d", ErrTooLong, n, maxLen)
	}
	return nil
}
