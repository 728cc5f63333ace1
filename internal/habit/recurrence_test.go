package habit

import (
	"testing"
	"time"

	"github.com/mrosales/habitd/internal/models"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsDueOnDate_DailyWithinRange(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyDaily,
		StartDate: "2026-01-10",
		EndDate:   "2026-01-20",
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2026-01-09", false},
		{"2026-01-10", true}, // start is inclusive
		{"2026-01-15", true},
		{"2026-01-20", true}, // end is inclusive
		{"2026-01-21", false},
	}

	for _, c := range cases {
		if got := IsDueOnDate(h, date(c.date)); got != c.want {
			t.Errorf("IsDueOnDate(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestIsDueOnDate_DailyNoBounds(t *testing.T) {
	h := models.Habit{Frequency: models.FrequencyDaily}
	if !IsDueOnDate(h, date("2026-06-15")) {
		t.Error("daily habit without bounds should be due on any date")
	}
}

func TestIsDueOnDate_BoundsIgnoreTimeOfDay(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyDaily,
		StartDate: "2026-01-10",
		EndDate:   "2026-01-10",
	}

	// 23:59 on the end date is still within range
	late := time.Date(2026, 1, 10, 23, 59, 0, 0, time.Local)
	if !IsDueOnDate(h, late) {
		t.Error("habit should be due at any time of day within its range")
	}
}

func TestIsDueOnDate_WeeklyMatchesSelectedDays(t *testing.T) {
	h := models.Habit{
		Frequency:  models.FrequencyWeekly,
		DaysOfWeek: []string{"MONDAY", "WEDNESDAY"},
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2026-01-05", true},  // Monday
		{"2026-01-06", false}, // Tuesday
		{"2026-01-07", true},  // Wednesday
		{"2026-01-11", false}, // Sunday
	}

	for _, c := range cases {
		if got := IsDueOnDate(h, date(c.date)); got != c.want {
			t.Errorf("IsDueOnDate(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestIsDueOnDate_WeeklyEmptyDaysMeansEveryDay(t *testing.T) {
	h := models.Habit{Frequency: models.FrequencyWeekly}

	for day := 5; day <= 11; day++ {
		d := time.Date(2026, 1, day, 0, 0, 0, 0, time.Local)
		if !IsDueOnDate(h, d) {
			t.Errorf("weekly habit with no selected days should be due on %s", d.Format("2006-01-02"))
		}
	}
}

func TestIsDueOnDate_MonthlyMatchesStartDay(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyMonthly,
		StartDate: "2026-01-15",
	}

	if !IsDueOnDate(h, date("2026-03-15")) {
		t.Error("monthly habit should be due on the 15th of later months")
	}
	if IsDueOnDate(h, date("2026-03-14")) {
		t.Error("monthly habit should not be due on other days")
	}
}

func TestIsDueOnDate_MonthlyClampsToShortMonths(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyMonthly,
		StartDate: "2026-01-31",
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2026-02-28", true},  // February 2026 has 28 days
		{"2026-02-27", false},
		{"2026-04-30", true}, // April has 30 days
		{"2026-04-29", false},
		{"2026-05-31", true}, // back on the real day in long months
		{"2026-05-30", false},
	}

	for _, c := range cases {
		if got := IsDueOnDate(h, date(c.date)); got != c.want {
			t.Errorf("IsDueOnDate(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestIsDueOnDate_MonthlyLeapFebruary(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyMonthly,
		StartDate: "2028-01-30",
	}

	if !IsDueOnDate(h, date("2028-02-29")) {
		t.Error("day 30 should clamp to Feb 29 in a leap year")
	}
	if IsDueOnDate(h, date("2028-02-28")) {
		t.Error("day 30 should not match Feb 28 in a leap year")
	}
}

func TestIsDueOnDate_MonthlyWithoutStartDate(t *testing.T) {
	h := models.Habit{Frequency: models.FrequencyMonthly}
	if !IsDueOnDate(h, date("2026-07-03")) {
		t.Error("monthly habit without a start date should be due every day")
	}
}

func TestIsDueOnDate_UnknownFrequencyBehavesLikeDaily(t *testing.T) {
	h := models.Habit{Frequency: models.Frequency("YEARLY")}
	if !IsDueOnDate(h, date("2026-07-03")) {
		t.Error("unrecognized frequency should fall back to due every day")
	}
}

func TestIsDueOnDate_MalformedBoundsAreIgnored(t *testing.T) {
	h := models.Habit{
		Frequency: models.FrequencyDaily,
		StartDate: "not-a-date",
	}
	if !IsDueOnDate(h, date("2026-07-03")) {
		t.Error("unparseable start date should not exclude the habit")
	}
}
