package models

import (
	"reflect"
	"testing"
	"time"
)

func TestNewHabitDefaults(t *testing.T) {
	h := NewHabit(NewHabitInput{Name: "Read"}, "user-1")

	if h.Priority != PriorityLow {
		t.Errorf("expected default priority LOW, got %s", h.Priority)
	}
	if h.Frequency != FrequencyDaily {
		t.Errorf("expected default frequency DAILY, got %s", h.Frequency)
	}
	today := time.Now().Format("2006-01-02")
	if h.StartDate != today || h.EndDate != today {
		t.Errorf("expected start/end to default to today, got %s / %s", h.StartDate, h.EndDate)
	}
	if h.Reminders == nil || h.DaysOfWeek == nil {
		t.Error("list fields should default to empty slices, not nil")
	}
	if h.UserID != "user-1" {
		t.Errorf("expected user ID to be set, got %q", h.UserID)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(time.Sunday); got != "SUNDAY" {
		t.Errorf("WeekdayName(Sunday) = %q", got)
	}
	if got := WeekdayName(time.Saturday); got != "SATURDAY" {
		t.Errorf("WeekdayName(Saturday) = %q", got)
	}
}

func TestParseWeekdays(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"mon,wed,fri", []string{"MONDAY", "WEDNESDAY", "FRIDAY"}},
		{"MONDAY, friday", []string{"MONDAY", "FRIDAY"}},
		{"0,6", []string{"SUNDAY", "SATURDAY"}},
		{"tue,tue,TUESDAY", []string{"TUESDAY"}},
		{" sat , sun ", []string{"SATURDAY", "SUNDAY"}},
	}

	for _, c := range cases {
		got, err := ParseWeekdays(c.in)
		if err != nil {
			t.Errorf("ParseWeekdays(%q) failed: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseWeekdaysRejectsUnknownLabels(t *testing.T) {
	for _, in := range []string{"someday", "7", "-1", "mon,funday"} {
		if _, err := ParseWeekdays(in); err == nil {
			t.Errorf("ParseWeekdays(%q) should fail", in)
		}
	}
}

func TestPriorityAndFrequencyValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Priority("URGENT").Valid() {
		t.Error("URGENT should not be a valid priority")
	}

	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly} {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if Frequency("HOURLY").Valid() {
		t.Error("HOURLY should not be a valid frequency")
	}
}
