package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/storage"
	"github.com/mrosales/habitd/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateStats
	StateAddHabit
)

const tabCount = 3

type HabitFormModel struct {
	Name      string
	Category  string
	Frequency models.Frequency
	Priority  models.Priority
	Weekdays  []string
}

type Model struct {
	store         storage.Provider
	userID        string
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	todayList     habitlist.Model
	habitsList    habitlist.Model
	habits        []models.Habit
	form          *huh.Form
	habitForm     *HabitFormModel
	lastDeleted   []string
	errMsg        string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, userID string) Model {
	m := Model{
		store:      store,
		userID:     userID,
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		todayList:  habitlist.New(nil, "Today", 0, 0),
		habitsList: habitlist.New(nil, "Habits", 0, 0),
	}

	m.refresh()
	return m
}

// refresh reloads habits from the store and rebuilds both lists.
func (m *Model) refresh() {
	habits, err := m.store.GetAllHabits(m.userID)
	if err != nil {
		m.errMsg = err.Error()
		habits = []models.Habit{}
	} else {
		m.errMsg = ""
	}
	m.habits = habits

	var dueToday []models.Habit
	for _, h := range habits {
		if habit.IsScheduledForToday(h) {
			dueToday = append(dueToday, h)
		}
	}

	m.todayList.SetHabits(dueToday)
	m.habitsList.SetHabits(habits)
}

func (m *Model) startAddHabitForm() {
	m.habitForm = &HabitFormModel{
		Frequency: models.FrequencyDaily,
		Priority:  models.PriorityLow,
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&m.habitForm.Name).
			Validate(func(s string) error {
				if s == "" {
					return errEmptyName
				}
				return nil
			}),
		huh.NewInput().
			Title("Category").
			Value(&m.habitForm.Category),
		huh.NewSelect[models.Frequency]().
			Title("Frequency").
			Options(
				huh.NewOption("Daily", models.FrequencyDaily),
				huh.NewOption("Weekly", models.FrequencyWeekly),
				huh.NewOption("Monthly", models.FrequencyMonthly),
			).
			Value(&m.habitForm.Frequency),
		huh.NewMultiSelect[string]().
			Title("Weekdays (weekly only)").
			Options(weekdayOptions()...).
			Value(&m.habitForm.Weekdays),
		huh.NewSelect[models.Priority]().
			Title("Priority").
			Options(
				huh.NewOption("Low", models.PriorityLow),
				huh.NewOption("Medium", models.PriorityMedium),
				huh.NewOption("High", models.PriorityHigh),
			).
			Value(&m.habitForm.Priority),
	}

	m.form = huh.NewForm(huh.NewGroup(fields...))
	m.previousState = m.state
	m.state = StateAddHabit
}

func weekdayOptions() []huh.Option[string] {
	names := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	opts := make([]huh.Option[string], len(names))
	for i, n := range names {
		opts[i] = huh.NewOption(n[:1]+strings.ToLower(n[1:3]), n)
	}
	return opts
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday || m.state == StateHabits {
		lk := habitlist.DefaultKeyMap()
		keys = append(keys, lk.Toggle, lk.Add, lk.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	lk := habitlist.DefaultKeyMap()
	return [][]key.Binding{global, {lk.Toggle, lk.Add, lk.Delete, lk.Restore}}
}

func (m Model) Init() tea.Cmd {
	return nil
}
