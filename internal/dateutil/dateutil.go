// Package dateutil holds the canonical calendar-date and clock-time string
// formats used everywhere a date or time is persisted or compared:
// YYYY-MM-DD for dates, HH:MM for times.
package dateutil

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// FormatDate renders a date as zero-padded YYYY-MM-DD in local time.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime renders a zero-padded 24-hour HH:MM in local time.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDate is the inverse of FormatDate. The result is local midnight of the
// named day: parsing in the local zone avoids the off-by-one that UTC parsing
// introduces for zones west of Greenwich.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Midnight truncates t to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}
