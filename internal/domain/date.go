package domain

import "time"

// DateLayout is the ISO-8601 calendar date layout used for due dates.
const DateLayout = time.DateOnly

// NewDate returns midnight UTC of the given calendar day.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDate drops the time-of-day and zone, keeping the calendar day as seen in t's location.
func TruncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a due date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
