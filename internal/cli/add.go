package cli

import (
	"fmt"

	"github.com/mrosales/habitd/internal/models"
)

type AddCmd struct {
	Name           string   `arg:"" help:"Habit name."`
	Category       string   `short:"c" help:"Category label."`
	Description    string   `help:"Longer description."`
	Frequency      string   `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
	Weekdays       string   `short:"w" help:"Comma-separated weekdays for weekly habits."`
	Start          string   `short:"s" help:"Start date (YYYY-MM-DD, default today)."`
	End            string   `short:"e" help:"End date (YYYY-MM-DD, default today)."`
	Time           string   `short:"t" help:"Reminder time (HH:MM)."`
	Reminders      []string `short:"r" help:"Additional reminder times (HH:MM)."`
	Priority       string   `short:"p" help:"Priority (low|medium|high)." default:"low"`
	DailyGoal      string   `help:"Daily goal text."`
	AdditionalGoal string   `help:"Additional goal text."`
	Location       string   `help:"Location as 'lat,lon'."`
	Image          string   `help:"Image URI."`
}

func (c *AddCmd) Validate() error {
	if err := validateDates(c.Start, c.End); err != nil {
		return err
	}
	times := append([]string{c.Time}, c.Reminders...)
	return validateTimes(times...)
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}
	frequency, err := parseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	var daysOfWeek []string
	if c.Weekdays != "" {
		daysOfWeek, err = models.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
	}

	h := models.NewHabit(models.NewHabitInput{
		Name:           c.Name,
		Category:       c.Category,
		Description:    c.Description,
		Time:           c.Time,
		Reminders:      c.Reminders,
		Priority:       priority,
		Frequency:      frequency,
		StartDate:      c.Start,
		EndDate:        c.End,
		DaysOfWeek:     daysOfWeek,
		DailyGoal:      c.DailyGoal,
		AdditionalGoal: c.AdditionalGoal,
		ImageURI:       c.Image,
		Location:       c.Location,
	}, ctx.UserID)

	id, err := ctx.Store.AddHabit(h)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", c.Name, id)
	return nil
}
