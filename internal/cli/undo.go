package cli

import (
	"fmt"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/habit"
)

type UndoCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
	Date  string `short:"d" help:"Date to unmark (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *UndoCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if !habit.IsCompletedOn(h, date) {
		fmt.Printf("%s is not marked done on %s\n", h.Name, dateutil.FormatDate(date))
		return nil
	}

	updated := habit.UnmarkCompleted(h, date)
	if err := ctx.Store.UpdateProgress(h.ID, updated.CompletedDates, updated.Streak); err != nil {
		return err
	}

	fmt.Printf("Unmarked %s on %s (streak: %d)\n", h.Name, dateutil.FormatDate(date), updated.Streak)
	return nil
}
