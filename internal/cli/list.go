package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrosales/habitd/internal/habit"
)

type ListCmd struct {
	Category string `short:"c" help:"Only habits in this category."`
	DueToday bool   `help:"Only habits due today."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(ctx.UserID)
	if err != nil {
		return err
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].Name < habits[j].Name
	})

	shown := 0
	for _, h := range habits {
		if c.Category != "" && !strings.EqualFold(h.Category, c.Category) {
			continue
		}
		if c.DueToday && !habit.IsScheduledForToday(h) {
			continue
		}

		marker := "○"
		if habit.IsCompletedToday(h) {
			marker = "✓"
		}

		fmt.Printf("%s %-30s %s, %s priority, streak %d\n",
			marker, h.Name, formatSchedule(h), strings.ToLower(string(h.Priority)), h.Streak)
		if h.Category != "" {
			fmt.Printf("      Category: %s\n", h.Category)
		}
		fmt.Printf("      ID: %s\n", h.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No habits found")
	}

	return nil
}
