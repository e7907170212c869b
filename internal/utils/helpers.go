package utils

import (
	"math"
	"strings"
	"time"
)

// monthLayout is the YYYY-MM format used for budget and summary months
const monthLayout = "2006-01"

// ParseMonth parses a strict YYYY-MM month string. time.Parse alone accepts
// unpadded months, so the result is round-tripped to reject those.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil || t.Format(monthLayout) != month {
		return time.Time{}, NewBadMonthFormatError(month)
	}
	return t, nil
}

// Normalize trims surrounding whitespace and lowercases a string.
// It is applied to usernames, emails, and categories before storage
// or comparison so that lookups are case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Round2 rounds a monetary value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
