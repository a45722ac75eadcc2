// Package form converts raw user-entered field values into typed record
// fields. Coercion never fails: bad numeric input falls back to zero (or nil
// for optional fields), matching what the forms promise the stores.
package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount parses a money amount into cents. It accepts both "1234.56" and the
// European "1 234,56" / "1.234,56" shapes, with an optional euro sign.
// Unparseable input yields 0.
func Amount(s string) int64 {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', '€':
			return -1
		}

		return r
	}, s)

	if strings.Contains(clean, ",") {
		// Comma is the decimal separator; any dots are thousands marks.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Int parses an integer field, defaulting to 0.
func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}

// Float parses a float field, defaulting to 0.
func Float(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return f
}

// OptionalInt parses an optional integer field, nil when empty or invalid.
func OptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}

	return &n
}

// OptionalFloat parses an optional float field, nil when empty or invalid.
func OptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}

	return &f
}

// Bool reports whether a checkbox-style value is set.
func Bool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1":
		return true
	}

	return false
}

// List splits a comma-separated field into trimmed non-empty entries.
func List(s string) []string {
	var out []string

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Date parses a YYYY-MM-DD field, returning the zero time on failure.
func Date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}

	return t
}
