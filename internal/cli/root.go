package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mrosales/habitd/internal/backup"
	"github.com/mrosales/habitd/internal/config"
	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
	UserID string
}

// PerformAutomaticBackup snapshots local stores on TUI startup. Remote stores
// and failures are silently skipped; a backup must never block usage.
func (ctx *Context) PerformAutomaticBackup() {
	path := ctx.Store.GetConfigPath()
	if strings.HasPrefix(path, "firestore://") {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveDate parses a --date value; empty and "today" mean the current day.
func resolveDate(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return time.Now(), nil
	}
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

// resolveHabit finds a habit by exact ID, then by unique case-insensitive
// name among the user's habits.
func resolveHabit(ctx *Context, ref string) (models.Habit, error) {
	if h, err := ctx.Store.GetHabit(ref); err == nil {
		return h, nil
	}

	habits, err := ctx.Store.GetAllHabits(ctx.UserID)
	if err != nil {
		return models.Habit{}, err
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("no habit found matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("%q matches %d habits, use the ID instead", ref, len(matches))
	}
}

func parsePriority(s string) (models.Priority, error) {
	p := models.Priority(strings.ToUpper(s))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority: %s (use low|medium|high)", s)
	}
	return p, nil
}

func parseFrequency(s string) (models.Frequency, error) {
	f := models.Frequency(strings.ToUpper(s))
	if !f.Valid() {
		return "", fmt.Errorf("invalid frequency: %s (use daily|weekly|monthly)", s)
	}
	return f, nil
}

func formatSchedule(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(h.DaysOfWeek) > 0 {
			var days []string
			for _, d := range h.DaysOfWeek {
				if len(d) >= 3 {
					days = append(days, d[:1]+strings.ToLower(d[1:3]))
				}
			}
			return "weekly on " + strings.Join(days, ",")
		}
		return "weekly"
	case models.FrequencyMonthly:
		return "monthly"
	default:
		return strings.ToLower(string(h.Frequency))
	}
}

func validateTimes(times ...string) error {
	for _, t := range times {
		if t == "" {
			continue
		}
		if _, err := time.Parse(dateutil.TimeLayout, t); err != nil {
			return fmt.Errorf("invalid time %q, use HH:MM", t)
		}
	}
	return nil
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := dateutil.ParseDate(d); err != nil {
			return fmt.Errorf("invalid date %q, use YYYY-MM-DD", d)
		}
	}
	return nil
}
