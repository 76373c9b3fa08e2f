package utils

import (
	"time"

	"github.com/mkhalil/studenthub/internal/constants"
)

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// WithinLastDays reports whether the date string falls on or after
// now minus the given number of days. Malformed dates are excluded.
// YYYY-MM-DD strings order lexicographically, so the comparison is on
// the formatted dates to stay timezone-agnostic.
func WithinLastDays(date string, days int, now time.Time) bool {
	if !ValidDate(date) {
		return false
	}
	lower := now.AddDate(0, 0, -days).Format(constants.DateFormat)
	return date >= lower
}
