package cli

import (
	"fmt"

	"github.com/mrosales/habitd/internal/models"
)

type EditCmd struct {
	Habit          string  `arg:"" help:"Habit ID or name."`
	Name           *string `help:"New name."`
	Category       *string `short:"c" help:"New category."`
	Description    *string `help:"New description."`
	Frequency      *string `short:"f" help:"New frequency (daily|weekly|monthly)."`
	Weekdays       *string `short:"w" help:"New comma-separated weekdays."`
	Start          *string `short:"s" help:"New start date (YYYY-MM-DD)."`
	End            *string `short:"e" help:"New end date (YYYY-MM-DD)."`
	Time           *string `short:"t" help:"New reminder time (HH:MM)."`
	Priority       *string `short:"p" help:"New priority (low|medium|high)."`
	DailyGoal      *string `help:"New daily goal text."`
	AdditionalGoal *string `help:"New additional goal text."`
	Location       *string `help:"New location as 'lat,lon'."`
	Image          *string `help:"New image URI."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := resolveHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		h.Name = *c.Name
	}
	if c.Category != nil {
		h.Category = *c.Category
	}
	if c.Description != nil {
		h.Description = *c.Description
	}
	if c.Frequency != nil {
		h.Frequency, err = parseFrequency(*c.Frequency)
		if err != nil {
			return err
		}
	}
	if c.Weekdays != nil {
		var days []string
		if *c.Weekdays != "" {
			days, err = models.ParseWeekdays(*c.Weekdays)
			if err != nil {
				return err
			}
		}
		if days == nil {
			days = []string{}
		}
		h.DaysOfWeek = days
	}
	if c.Start != nil {
		if err := validateDates(*c.Start); err != nil {
			return err
		}
		h.StartDate = *c.Start
	}
	if c.End != nil {
		if err := validateDates(*c.End); err != nil {
			return err
		}
		h.EndDate = *c.End
	}
	if c.Time != nil {
		if err := validateTimes(*c.Time); err != nil {
			return err
		}
		h.Time = *c.Time
	}
	if c.Priority != nil {
		h.Priority, err = parsePriority(*c.Priority)
		if err != nil {
			return err
		}
	}
	if c.DailyGoal != nil {
		h.DailyGoal = *c.DailyGoal
	}
	if c.AdditionalGoal != nil {
		h.AdditionalGoal = *c.AdditionalGoal
	}
	if c.Location != nil {
		h.Location = *c.Location
	}
	if c.Image != nil {
		h.ImageURI = *c.Image
	}

	if err := ctx.Store.UpdateHabit(h); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", h.Name)
	return nil
}
