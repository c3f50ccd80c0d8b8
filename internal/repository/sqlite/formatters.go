package sqlite

import (
	"time"
)

// dateLayout is the ISO-8601 calendar layout stored in the due_date column.
const dateLayout = time.DateOnly

// FormatDateForDB formats a date as YYYY-MM-DD, using the calendar day of t in its own location.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a YYYY-MM-DD string from the database into midnight UTC.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
