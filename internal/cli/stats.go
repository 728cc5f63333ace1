package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/stats"
)

type StatsCmd struct {
	Derived bool `help:"Show streaks recomputed from completion history instead of the stored counters."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(ctx.UserID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet")
		return nil
	}

	now := time.Now()
	progress := stats.TodayProgress(habits)
	scheduled := stats.ScheduledTodayProgress(habits)
	bestName, best := stats.BestStreak(habits)

	fmt.Printf("Habits:            %d\n", len(habits))
	fmt.Printf("Completed today:   %d/%d (%d/%d of those due)\n",
		progress.Completed, progress.Total, scheduled.Completed, scheduled.Total)
	fmt.Printf("Current streak:    %d day(s)\n", stats.CurrentStreak(stats.HabitsByDate(habits), now))
	fmt.Printf("Best streak:       %s (%d)\n", bestName, best)
	fmt.Printf("Average streak:    %d\n", stats.AverageStreak(habits))
	fmt.Printf("Total completions: %d\n", stats.TotalCompletions(habits))

	fmt.Println("\nLast 7 days:")
	week := stats.WeekCompletions(habits, now)
	for i, count := range week {
		day := now.AddDate(0, 0, i-6)
		fmt.Printf("  %s  %s %d\n", day.Format("Mon"), strings.Repeat("█", count), count)
	}

	printCounts("By category", stats.CategoryCounts(habits))
	printTypedCounts("By priority", stats.PriorityCounts(habits))
	printTypedCounts("By frequency", stats.FrequencyCounts(habits))

	if c.Derived {
		fmt.Println("\nDerived streaks (consecutive days from history):")
		for _, h := range habits {
			fmt.Printf("  %-30s counter %d, derived %d\n", h.Name, h.Streak, habit.DerivedStreak(h, now))
		}
	}

	return nil
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		label := k
		if label == "" {
			label = "(none)"
		}
		fmt.Printf("  %-20s %d\n", label, counts[k])
	}
}

func printTypedCounts[K models.Priority | models.Frequency](title string, counts map[K]int) {
	converted := make(map[string]int, len(counts))
	for k, v := range counts {
		converted[string(k)] = v
	}
	printCounts(title, converted)
}
