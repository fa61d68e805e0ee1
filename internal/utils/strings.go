package utils

import (
	"strconv"
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseLeadingInt reads an optional sign followed by the leading run of
// digits, the way form inputs are usually coerced: "3" -> 3, "4 people" -> 4.
// Anything without leading digits yields 0.
func ParseLeadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow
		return 0
	}
	if neg {
		return -n
	}
	return n
}
