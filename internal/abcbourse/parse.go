package abcbourse

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount parses a locale-formatted euro amount such as "1 234,56 €".
// Currency symbol and all whitespace (including non-breaking variants) are
// stripped and the decimal comma becomes a decimal point. Returns nil when
// the string is empty or does not parse.
func ParseAmount(s string) *float64 {
	clean := stripSpaces(strings.ReplaceAll(s, "€", ""))
	clean = strings.ReplaceAll(clean, ",", ".")
	if clean == "" {
		return nil
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseQuantity parses an integer share count with embedded grouping spaces,
// e.g. "1 000". Returns nil on failure.
func ParseQuantity(s string) *int64 {
	clean := stripSpaces(s)
	if clean == "" {
		return nil
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
