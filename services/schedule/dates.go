package schedule

import "time"

// ISODate is the calendar date layout used on every wire surface.
const ISODate = "2006-01-02"

// DateOnly normalizes a date string to its date component. Timestamps such as
// "2026-03-02T10:00:00Z" compare equal to "2026-03-02".
func DateOnly(date string) string {
	if len(date) > len(ISODate) {
		return date[:len(ISODate)]
	}
	return date
}

// ParseDate parses an ISO calendar date, tolerating a trailing time component.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(ISODate, DateOnly(date))
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}
