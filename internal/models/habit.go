package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Habit is a recurring practice to track. Dates are stored as YYYY-MM-DD
// strings and times as HH:MM strings; CompletedDates holds every day the user
// marked the habit done. Streak is an imperative counter maintained by the
// toggle operations, not derived from CompletedDates.
type Habit struct {
	ID             string    `json:"id" firestore:"-"`
	UserID         string    `json:"user_id" firestore:"userId"`
	Name           string    `json:"name" firestore:"name"`
	Category       string    `json:"category" firestore:"category"`
	Description    string    `json:"description" firestore:"description"`
	Time           string    `json:"time" firestore:"time"`
	Reminders      []string  `json:"reminders" firestore:"reminders"`
	Priority       Priority  `json:"priority" firestore:"priority"`
	Frequency      Frequency `json:"frequency" firestore:"frequency"`
	StartDate      string    `json:"start_date" firestore:"startDate"`
	EndDate        string    `json:"end_date" firestore:"endDate"`
	DaysOfWeek     []string  `json:"days_of_week" firestore:"daysOfWeek"`
	DailyGoal      string    `json:"daily_goal" firestore:"dailyGoal"`
	AdditionalGoal string    `json:"additional_goal" firestore:"additionalGoal"`
	Streak         int       `json:"streak" firestore:"streak"`
	CompletedDates []string  `json:"completed_dates" firestore:"completedDates"`
	ImageURI       string    `json:"image_uri" firestore:"imageUri"`
	Location       string    `json:"location" firestore:"location"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	DeletedAt      *string   `json:"deleted_at,omitempty" firestore:"deletedAt"`
}

// NewHabitInput carries the user-supplied fields for habit creation.
type NewHabitInput struct {
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Time           string    `json:"time"`
	Reminders      []string  `json:"reminders"`
	Priority       Priority  `json:"priority"`
	Frequency      Frequency `json:"frequency"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	DaysOfWeek     []string  `json:"days_of_week"`
	DailyGoal      string    `json:"daily_goal"`
	AdditionalGoal string    `json:"additional_goal"`
	ImageURI       string    `json:"image_uri"`
	Location       string    `json:"location"`
}

// NewHabit builds a fresh habit from input. Progress starts empty: zero streak
// and no completed dates. Start and end date default to today when unset.
func NewHabit(input NewHabitInput, userID string) Habit {
	today := time.Now().Format("2006-01-02")

	h := Habit{
		UserID:         userID,
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		Time:           input.Time,
		Reminders:      input.Reminders,
		Priority:       input.Priority,
		Frequency:      input.Frequency,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DaysOfWeek:     input.DaysOfWeek,
		DailyGoal:      input.DailyGoal,
		AdditionalGoal: input.AdditionalGoal,
		CompletedDates: []string{},
		ImageURI:       input.ImageURI,
		Location:       input.Location,
		CreatedAt:      time.Now(),
	}

	if h.Priority == "" {
		h.Priority = PriorityLow
	}
	if h.Frequency == "" {
		h.Frequency = FrequencyDaily
	}
	if h.StartDate == "" {
		h.StartDate = today
	}
	if h.EndDate == "" {
		h.EndDate = today
	}
	if h.Reminders == nil {
		h.Reminders = []string{}
	}
	if h.DaysOfWeek == nil {
		h.DaysOfWeek = []string{}
	}

	return h
}

// weekdayNames maps time.Weekday to the canonical representation stored in
// DaysOfWeek: full uppercase English names, regardless of display locale.
var weekdayNames = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// WeekdayName returns the canonical name for a weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// ParseWeekdays translates a comma-separated list of weekday labels
// (full names, three-letter abbreviations, or numbers with 0=Sunday) into
// canonical names. Conversion from user spelling happens here, once, so the
// recurrence evaluator only ever sees canonical names.
func ParseWeekdays(s string) ([]string, error) {
	abbrev := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}

	var days []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}

		var name string
		if wd, ok := abbrev[part]; ok {
			name = weekdayNames[wd]
		} else if num, err := strconv.Atoi(part); err == nil && num >= 0 && num <= 6 {
			name = weekdayNames[num]
		} else {
			matched := false
			for _, full := range weekdayNames {
				if strings.EqualFold(part, full) {
					name = full
					matched = true
					break
				}
			}
			if !matched {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}

		if !seen[name] {
			seen[name] = true
			days = append(days, name)
		}
	}

	return days, nil
}
