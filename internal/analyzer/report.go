package analyzer

import (
	"fmt"
	"strings"

	"github.com/neo/pwmeter/internal/types"
)

// Fallback texts
const (
	VarietyLimited = "Limited"
	NoPatterns     = "No common patterns detected"
)

// Report is the presentational summary of an analysis.
type Report struct {
	Length    string `json:"length"`
	Variety   string `json:"variety"`
	CrackTime string `json:"crack_time"`
	Patterns  string `json:"patterns"`
}

// BuildReport formats the pipeline outputs. Only the first finding is surfaced.
func BuildReport(f Features, crackTime string, findings []string) Report {
	r := Report{
		Length:    fmt.Sprintf("%d characters", f.Length),
		Variety:   VarietyLimited,
		CrackTime: crackTime,
		Patterns:  NoPatterns,
	}
	if labels := varietyLabels(f.Classes()); len(labels) > 0 {
		r.Variety = strings.Join(labels, ", ")
	}
	if len(findings) > 0 {
		r.Patterns = findings[0]
	}
	return r
}

func varietyLabels(classes []types.CharClass) []string {
	labels := make([]string, 0, len(classes))
	for _, c := range classes {
		labels = append(labels, c.Label())
	}
	return labels
}
