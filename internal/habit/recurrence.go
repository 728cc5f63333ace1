// Package habit implements the scheduling and streak engine: pure functions
// that decide whether a habit is due on a date, whether it is completed, and
// how a completion toggle mutates its progress. Callers own persistence; every
// function here reads a snapshot and returns a new value.
package habit

import (
	"time"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/models"
)

// IsDueOnDate reports whether the habit's recurrence rule matches the given
// date and the date falls within the habit's active range. Both bounds are
// inclusive and compared at local midnight.
func IsDueOnDate(h models.Habit, date time.Time) bool {
	target := dateutil.Midnight(date)

	if h.StartDate != "" {
		start, err := dateutil.ParseDate(h.StartDate)
		if err == nil && target.Before(start) {
			return false
		}
	}

	if h.EndDate != "" {
		end, err := dateutil.ParseDate(h.EndDate)
		if err == nil && target.After(end) {
			return false
		}
	}

	switch h.Frequency {
	case models.FrequencyDaily:
		return true

	case models.FrequencyWeekly:
		// An empty selection means "no restriction", not "never".
		if len(h.DaysOfWeek) == 0 {
			return true
		}
		name := models.WeekdayName(target.Weekday())
		for _, d := range h.DaysOfWeek {
			if d == name {
				return true
			}
		}
		return false

	case models.FrequencyMonthly:
		if h.StartDate == "" {
			return true
		}
		start, err := dateutil.ParseDate(h.StartDate)
		if err != nil {
			return true
		}
		scheduled := start.Day()
		last := lastDayOfMonth(target)
		// A habit scheduled on the 31st lands on the last day of shorter months.
		if scheduled > last {
			return target.Day() == last
		}
		return target.Day() == scheduled

	default:
		// Unknown frequency behaves like daily.
		return true
	}
}

// IsScheduledForToday reports whether the habit is due today.
func IsScheduledForToday(h models.Habit) bool {
	return IsDueOnDate(h, time.Now())
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}
