package analyzer

import (
	"github.com/neo/pwmeter/internal/types"
)

// Length thresholds
const (
	MinimumLength = 8
	StrongLength  = 12
)

// Features are the character-class and length facts derived from a password.
type Features struct {
	HasLower     bool `json:"has_lower"`
	HasUpper     bool `json:"has_upper"`
	HasDigit     bool `json:"has_digit"`
	HasSpecial   bool `json:"has_special"`
	Length       int  `json:"length"`
	MeetsMinimum bool `json:"meets_minimum"`
	MeetsStrong  bool `json:"meets_strong"`
}

// Requirement is one line of a password checklist.
type Requirement struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

// Extract derives Features from a password. Length counts UTF-16 code units.
func Extract(password string) Features {
	f := Features{Length: types.CodeUnits(password)}
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			f.HasLower = true
		case r >= 'A' && r <= 'Z':
			f.HasUpper = true
		case r >= '0' && r <= '9':
			f.HasDigit = true
		default:
			f.HasSpecial = true
		}
	}
	f.MeetsMinimum = f.Length >= MinimumLength
	f.MeetsStrong = f.Length >= StrongLength
	return f
}

// Classes lists the present classes in report order (upper, lower, digit, special).
func (f Features) Classes() []types.CharClass {
	classes := make([]types.CharClass, 0, len(types.AllCharClasses))
	for _, c := range types.AllCharClasses {
		if f.Has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// Has reports whether a class is present.
func (f Features) Has(c types.CharClass) bool {
	switch c {
	case types.CharClassUpper:
		return f.HasUpper
	case types.CharClassLower:
		return f.HasLower
	case types.CharClassDigit:
		return f.HasDigit
	case types.CharClassSpecial:
		return f.HasSpecial
	default:
		return false
	}
}

// Requirements returns the checklist in display order.
func (f Features) Requirements() []Requirement {
	return []Requirement{
		{Name: "length", Met: f.MeetsMinimum},
		{Name: "uppercase", Met: f.HasUpper},
		{Name: "lowercase", Met: f.HasLower},
		{Name: "number", Met: f.HasDigit},
		{Name: "special", Met: f.HasSpecial},
		{Name: "length_strong", Met: f.MeetsStrong},
	}
}
