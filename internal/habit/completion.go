package habit

import (
	"time"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/models"
)

// IsCompletedOn reports whether the habit was marked done on the given date.
func IsCompletedOn(h models.Habit, date time.Time) bool {
	dateStr := dateutil.FormatDate(date)
	for _, d := range h.CompletedDates {
		if d == dateStr {
			return true
		}
	}
	return false
}

// IsCompletedToday reports whether the habit was marked done today.
func IsCompletedToday(h models.Habit) bool {
	return IsCompletedOn(h, time.Now())
}

// MarkCompleted returns a copy of the habit with the date recorded as
// completed and the streak incremented. Marking an already-completed date is
// a no-op: no duplicate entry, no double increment. The input is not mutated.
func MarkCompleted(h models.Habit, date time.Time) models.Habit {
	dateStr := dateutil.FormatDate(date)

	for _, d := range h.CompletedDates {
		if d == dateStr {
			return h
		}
	}

	updated := h
	updated.CompletedDates = make([]string, 0, len(h.CompletedDates)+1)
	updated.CompletedDates = append(updated.CompletedDates, h.CompletedDates...)
	updated.CompletedDates = append(updated.CompletedDates, dateStr)
	updated.Streak = h.Streak + 1
	return updated
}

// UnmarkCompleted returns a copy of the habit with the date removed from the
// completed set and the streak decremented, floored at zero. Removing an
// absent date leaves the set unchanged but still decrements the streak: the
// counter is a ratchet, not a value derived from the set.
func UnmarkCompleted(h models.Habit, date time.Time) models.Habit {
	dateStr := dateutil.FormatDate(date)

	updated := h
	updated.CompletedDates = make([]string, 0, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		if d != dateStr {
			updated.CompletedDates = append(updated.CompletedDates, d)
		}
	}
	updated.Streak = h.Streak - 1
	if updated.Streak < 0 {
		updated.Streak = 0
	}
	return updated
}

// DerivedStreak recomputes the habit's streak from CompletedDates instead of
// trusting the counter: the length of the consecutive-day run ending at the
// most recent completed date on or before asOf. The counter can drift when
// toggles happen out of chronological order; this cannot.
func DerivedStreak(h models.Habit, asOf time.Time) int {
	limit := dateutil.Midnight(asOf)

	completed := make(map[string]bool, len(h.CompletedDates))
	var newest time.Time
	for _, d := range h.CompletedDates {
		day, err := dateutil.ParseDate(d)
		if err != nil || day.After(limit) {
			continue
		}
		completed[dateutil.FormatDate(day)] = true
		if day.After(newest) {
			newest = day
		}
	}
	if newest.IsZero() {
		return 0
	}

	streak := 0
	for cursor := newest; completed[dateutil.FormatDate(cursor)]; cursor = cursor.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
