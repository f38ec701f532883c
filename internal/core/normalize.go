package core

import "strings"

// Normalize lowercases s, trims it and collapses internal whitespace runs
// to a single space.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
