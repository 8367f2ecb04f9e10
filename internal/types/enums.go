package types

import (
	"fmt"
)

// Tier represents the qualitative strength bucket of a password
type Tier string

const (
	TierWeak   Tier = "weak"
	TierFair   Tier = "fair"
	TierGood   Tier = "good"
	TierStrong Tier = "strong"
)

// CharClass represents one of the recognized character classes
type CharClass string

const (
	// CharClassUpper - ASCII A-Z
	CharClassUpper CharClass = "uppercase"

	// CharClassLower - ASCII a-z
	CharClassLower CharClass = "lowercase"

	// CharClassDigit - ASCII 0-9
	CharClassDigit CharClass = "numbers"

	// CharClassSpecial - anything outside [A-Za-z0-9], including non-ASCII
	CharClassSpecial CharClass = "special"
)

// State is the analysis state emitted for a given input
type State string

const (
	// StateIdle is the reset state produced for an empty password
	StateIdle State = "idle"

	// StateAnalyzing is produced for any non-empty password
	StateAnalyzing State = "analyzing"
)

var (
	// AllTiers contains all tiers from weakest to strongest
	AllTiers = []Tier{
		TierWeak,
		TierFair,
		TierGood,
		TierStrong,
	}

	// AllCharClasses contains all classes in report order
	AllCharClasses = []CharClass{
		CharClassUpper,
		CharClassLower,
		CharClassDigit,
		CharClassSpecial,
	}

	tierMap = map[string]Tier{
		string(TierWeak):   TierWeak,
		string(TierFair):   TierFair,
		string(TierGood):   TierGood,
		string(TierStrong): TierStrong,
	}

	charClassMap = map[string]CharClass{
		string(CharClassUpper):   CharClassUpper,
		string(CharClassLower):   CharClassLower,
		string(CharClassDigit):   CharClassDigit,
		string(CharClassSpecial): CharClassSpecial,
	}
)

// Error types for invalid values
var (
	ErrInvalidTier      = fmt.Errorf("invalid tier")
	ErrInvalidCharClass = fmt.Errorf("invalid character class")
)

// IsValid checks if the Tier is valid
func (t Tier) IsValid() bool {
	_, ok := tierMap[string(t)]
	return ok
}

// String converts the enum to string
func (t Tier) String() string {
	return string(t)
}

// Label returns the display label shown next to the strength bar
func (t Tier) Label() string {
	switch t {
	case TierWeak:
		return "Weak"
	case TierFair:
		return "Fair"
	case TierGood:
		return "Good"
	case TierStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Rank orders tiers from 0 (weak) to 3 (strong); -1 for unknown values.
func (t Tier) Rank() int {
	for i, v := range AllTiers {
		if v == t {
			return i
		}
	}
	return -1
}

// ParseTier parses a string into a Tier
func ParseTier(s string) (Tier, error) {
	if tier, ok := tierMap[s]; ok {
		return tier, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidTier, s)
}

// Description returns a human-readable description of the tier
func (t Tier) Description() string {
	switch t {
	case TierWeak:
		return "Easily guessed; choose something longer and more varied"
	case TierFair:
		return "Better than nothing, but still within reach of an offline attack"
	case TierGood:
		return "Reasonable for most accounts"
	case TierStrong:
		return "Long and varied enough to resist brute force"
	default:
		return "Unknown tier"
	}
}

// IsValid checks if the CharClass is valid
func (c CharClass) IsValid() bool {
	_, ok := charClassMap[string(c)]
	return ok
}

// String converts the enum to string
func (c CharClass) String() string {
	return string(c)
}

// Label returns the capitalized label used in the variety summary
func (c CharClass) Label() string {
	switch c {
	case CharClassUpper:
		return "Uppercase"
	case CharClassLower:
		return "Lowercase"
	case CharClassDigit:
		return "Numbers"
	case CharClassSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// ParseCharClass parses a string into a CharClass
func ParseCharClass(s string) (CharClass, error) {
	if class, ok := charClassMap[s]; ok {
		return class, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidCharClass, s)
}
