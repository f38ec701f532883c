package core

import (
	"strconv"
	"strings"
)

// ParseNumber parses a display-formatted number such as "1,234.5".
// The second return value is false when s is empty or does not parse;
// callers treat that as "no value", never as zero.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	// Thousands separators
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
