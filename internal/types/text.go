package types

import "unicode/utf16"

// CodeUnits returns the length of s in UTF-16 code units. Characters outside
// the Basic Multilingual Plane count as two.
func CodeUnits(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}
