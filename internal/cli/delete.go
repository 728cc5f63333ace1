package cli

import "fmt"

type DeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (restore with 'habitd restore %s')\n", h.Name, h.ID)
	return nil
}
