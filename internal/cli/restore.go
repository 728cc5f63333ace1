package cli

import "fmt"

type RestoreCmd struct {
	ID string `arg:"" help:"Habit ID to restore."`
}

func (c *RestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.RestoreHabit(c.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.ID)
	return nil
}
