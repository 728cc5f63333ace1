package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/tui/components/habitlist"
)

var errEmptyName = errors.New("name is required")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		listHeight := msg.Height - v - 4
		m.todayList.SetSize(msg.Width-h, listHeight)
		m.habitsList.SetSize(msg.Width-h, listHeight)
		return m, nil

	case habitlist.AddHabitMsg:
		m.startAddHabitForm()
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case habitlist.DeleteHabitMsg:
		if err := m.store.DeleteHabit(msg.ID); err != nil {
			m.errMsg = err.Error()
		} else {
			m.lastDeleted = append(m.lastDeleted, msg.ID)
		}
		m.refresh()
		return m, nil

	case habitlist.RestoreHabitMsg:
		if n := len(m.lastDeleted); n > 0 {
			id := m.lastDeleted[n-1]
			m.lastDeleted = m.lastDeleted[:n-1]
			if err := m.store.RestoreHabit(id); err != nil {
				m.errMsg = err.Error()
			}
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddHabit {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = SessionState((int(m.state) + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = SessionState((int(m.state) + tabCount - 1) % tabCount)
			return m, nil
		}
	}

	if m.state == StateAddHabit {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayList, cmd = m.todayList.Update(msg)
	case StateHabits:
		m.habitsList, cmd = m.habitsList.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		input := models.NewHabitInput{
			Name:       m.habitForm.Name,
			Category:   m.habitForm.Category,
			Frequency:  m.habitForm.Frequency,
			Priority:   m.habitForm.Priority,
			DaysOfWeek: m.habitForm.Weekdays,
		}
		if _, err := m.store.AddHabit(models.NewHabit(input, m.userID)); err != nil {
			m.errMsg = err.Error()
		}
		m.refresh()
		m.form = nil
		m.habitForm = nil
		m.state = m.previousState
	case huh.StateAborted:
		m.form = nil
		m.habitForm = nil
		m.state = m.previousState
	}

	return m, cmd
}

// toggleHabit flips today's completion for the habit and persists the result.
func (m *Model) toggleHabit(id string) {
	h, err := m.store.GetHabit(id)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	now := time.Now()
	var updated models.Habit
	if habit.IsCompletedOn(h, now) {
		updated = habit.UnmarkCompleted(h, now)
	} else {
		updated = habit.MarkCompleted(h, now)
	}

	if err := m.store.UpdateProgress(updated.ID, updated.CompletedDates, updated.Streak); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.refresh()
}
