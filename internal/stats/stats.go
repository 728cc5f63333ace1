// Package stats derives dashboard and summary values from a collection of
// habits. Every function is a pure computation over its arguments; empty
// collections yield zero values rather than errors.
package stats

import (
	"math"
	"time"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/models"
)

// Progress is a completed-out-of-total pair for a single day.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// TodayProgress counts habits completed today against all habits, without
// looking at schedules.
func TodayProgress(habits []models.Habit) Progress {
	p := Progress{Total: len(habits)}
	for _, h := range habits {
		if habit.IsCompletedToday(h) {
			p.Completed++
		}
	}
	return p
}

// ScheduledTodayProgress counts habits completed today against only the
// habits actually due today.
func ScheduledTodayProgress(habits []models.Habit) Progress {
	var p Progress
	for _, h := range habits {
		if !habit.IsScheduledForToday(h) {
			continue
		}
		p.Total++
		if habit.IsCompletedToday(h) {
			p.Completed++
		}
	}
	return p
}

// HabitsByDate groups habits by each date they were completed on.
func HabitsByDate(habits []models.Habit) map[string][]models.Habit {
	byDate := make(map[string][]models.Habit)
	for _, h := range habits {
		for _, d := range h.CompletedDates {
			byDate[d] = append(byDate[d], h)
		}
	}
	return byDate
}

// CurrentStreak walks backward from today one day at a time, counting
// consecutive days with at least one completion, stopping at the first gap.
// A day with no entry today means the streak is zero.
func CurrentStreak(byDate map[string][]models.Habit, today time.Time) int {
	streak := 0
	for cursor := dateutil.Midnight(today); ; cursor = cursor.AddDate(0, 0, -1) {
		if len(byDate[dateutil.FormatDate(cursor)]) == 0 {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the name and streak of the habit with the highest streak
// counter. Ties go to the first habit encountered; an empty collection yields
// ("", 0).
func BestStreak(habits []models.Habit) (string, int) {
	name := ""
	best := 0
	for i, h := range habits {
		if i == 0 || h.Streak > best {
			name = h.Name
			best = h.Streak
		}
	}
	return name, best
}

// AverageStreak returns the mean streak across habits, rounded to the nearest
// integer.
func AverageStreak(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	total := 0
	for _, h := range habits {
		total += h.Streak
	}
	return int(math.Round(float64(total) / float64(len(habits))))
}

// TotalCompletions sums completed dates across all habits.
func TotalCompletions(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += len(h.CompletedDates)
	}
	return total
}

// CategoryCounts groups habits by category label.
func CategoryCounts(habits []models.Habit) map[string]int {
	counts := make(map[string]int)
	for _, h := range habits {
		counts[h.Category]++
	}
	return counts
}

// PriorityCounts groups habits by priority.
func PriorityCounts(habits []models.Habit) map[models.Priority]int {
	counts := make(map[models.Priority]int)
	for _, h := range habits {
		counts[h.Priority]++
	}
	return counts
}

// FrequencyCounts groups habits by frequency.
func FrequencyCounts(habits []models.Habit) map[models.Frequency]int {
	counts := make(map[models.Frequency]int)
	for _, h := range habits {
		counts[h.Frequency]++
	}
	return counts
}

// WeekCompletions returns completions per day for the seven days ending at
// end, oldest first. Feeds the weekly bar chart.
func WeekCompletions(habits []models.Habit, end time.Time) []int {
	byDate := HabitsByDate(habits)
	counts := make([]int, 7)
	last := dateutil.Midnight(end)
	for i := 0; i < 7; i++ {
		day := last.AddDate(0, 0, i-6)
		counts[i] = len(byDate[dateutil.FormatDate(day)])
	}
	return counts
}
