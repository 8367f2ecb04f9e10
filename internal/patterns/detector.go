// Package patterns flags well-known weaknesses in a password: blacklisted
// substrings, repeated runs, keyboard rows and uniform casing. It is a
// heuristic blacklist, not a dictionary-backed scorer.
package patterns

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/neo/pwmeter/internal/types"
)

// Finding messages
const (
	MsgRepeated    = "Contains repeated characters"
	MsgUniformCase = "All characters are the same case"
)

// MinRepeatRun is the number of identical consecutive characters that counts as a run.
const MinRepeatRun = 4

// KeyboardWindow is the width of the keyboard-row n-grams that are matched.
const KeyboardWindow = 4

var (
	// CommonSequences are matched case-insensitively as substrings.
	CommonSequences = []string{"12345", "abcde", "qwerty", "password", "admin", "letmein", "welcome", "monkey"}

	// KeyboardRows are the QWERTY letter rows scanned for adjacent runs.
	KeyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
)

// Input carries the password plus its lower-cased form so every check shares
// a single ToLower call.
type Input struct {
	Raw   string
	Lower string
}

// Check is a single predicate. It returns zero or more findings.
type Check struct {
	Name string
	Run  func(in Input) []string
}

// Checks run in this order; findings are exposed by position.
var Checks = []Check{
	{Name: "common_sequence", Run: commonSequences},
	{Name: "repeated_characters", Run: repeatedCharacters},
	{Name: "keyboard_pattern", Run: keyboardPatterns},
	{Name: "uniform_case", Run: uniformCase},
}

// Detect runs every check and returns the findings in detection order.
func Detect(password string) []string {
	in := Input{Raw: password, Lower: strings.ToLower(password)}
	findings := []string{}
	for _, check := range Checks {
		findings = append(findings, check.Run(in)...)
	}
	return findings
}

func commonSequences(in Input) []string {
	var out []string
	for _, seq := range CommonSequences {
		if strings.Contains(in.Lower, seq) {
			out = append(out, fmt.Sprintf("Contains common sequence: %q", seq))
		}
	}
	return out
}

// repeatedCharacters works on the raw password, so "aAaA" is not a run.
func repeatedCharacters(in Input) []string {
	if HasRepeatRun(in.Raw, MinRepeatRun) {
		return []string{MsgRepeated}
	}
	return nil
}

// HasRepeatRun reports whether any UTF-16 code unit appears n or more times in
// a row. Line terminators never form a run, and neither do the alternating
// halves of a surrogate pair.
func HasRepeatRun(s string, n int) bool {
	if n <= 1 {
		return s != ""
	}
	var prev uint16
	count := 0
	for _, u := range utf16.Encode([]rune(s)) {
		if isLineTerminator(u) {
			count = 0
			continue
		}
		if count > 0 && u == prev {
			count++
		} else {
			prev = u
			count = 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

func isLineTerminator(u uint16) bool {
	return u == '\n' || u == '\r' || u == 0x2028 || u == 0x2029
}

// keyboardPatterns reports at most one 4-gram per row.
func keyboardPatterns(in Input) []string {
	var out []string
	for _, row := range KeyboardRows {
		for i := 0; i+KeyboardWindow <= len(row); i++ {
			gram := row[i : i+KeyboardWindow]
			if strings.Contains(in.Lower, gram) {
				out = append(out, fmt.Sprintf("Contains keyboard pattern: %q", gram))
				break
			}
		}
	}
	return out
}

// uniformCase also fires for caseless input such as "12345678".
func uniformCase(in Input) []string {
	if types.CodeUnits(in.Raw) <= 1 {
		return nil
	}
	if in.Raw == in.Lower || in.Raw == strings.ToUpper(in.Raw) {
		return []string{MsgUniformCase}
	}
	return nil
}
