package cli

import (
	"fmt"
	"sort"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/stats"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(ctx.UserID)
	if err != nil {
		return err
	}

	progress := stats.ScheduledTodayProgress(habits)
	fmt.Printf("Today (%s): %d/%d completed\n\n", dateutil.Today(), progress.Completed, progress.Total)

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].Name < habits[j].Name
	})

	due := 0
	for _, h := range habits {
		if !habit.IsScheduledForToday(h) {
			continue
		}
		due++

		marker := "○"
		if habit.IsCompletedToday(h) {
			marker = "✓"
		}
		line := fmt.Sprintf("  %s %s", marker, h.Name)
		if h.Time != "" {
			line += fmt.Sprintf(" (at %s)", h.Time)
		}
		if h.Streak > 0 {
			line += fmt.Sprintf("  🔥 %d", h.Streak)
		}
		fmt.Println(line)
	}

	if due == 0 {
		fmt.Println("  Nothing due today")
	}

	return nil
}
