// Package timeutil provides calendar-date arithmetic for the progress engine.
// All streak and review scheduling decisions work on whole calendar days, so
// times are normalized to midnight UTC before comparison.
package timeutil

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative if b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// IsYesterday reports whether a is exactly one calendar day before b.
func IsYesterday(a, b time.Time) bool {
	return DaysBetween(a, b) == 1
}

// Format renders t as a yyyy-mm-dd date string.
func Format(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// Parse reads a yyyy-mm-dd date string into a midnight-UTC time.
func Parse(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
