package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/stats"
)

var tabNames = []string{"Today", "Habits", "Stats"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateToday:
		b.WriteString(m.todayList.View())
	case StateHabits:
		b.WriteString(m.habitsList.View())
	case StateStats:
		b.WriteString(m.renderStats())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStats() string {
	if len(m.habits) == 0 {
		return "No habits yet. Press tab, then 'a' to add one."
	}

	now := time.Now()
	byDate := stats.HabitsByDate(m.habits)

	var b strings.Builder

	b.WriteString(statHeaderStyle.Render("Progress"))
	b.WriteString("\n")
	p := stats.ScheduledTodayProgress(m.habits)
	fmt.Fprintf(&b, "  Due today      %d/%d completed\n", p.Completed, p.Total)

	b.WriteString("\n")
	b.WriteString(statHeaderStyle.Render("Streaks"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Current        %d days\n", stats.CurrentStreak(byDate, now))
	if name, best := stats.BestStreak(m.habits); name != "" {
		fmt.Fprintf(&b, "  Best           %d (%s)\n", best, name)
	}
	fmt.Fprintf(&b, "  Average        %d\n", stats.AverageStreak(m.habits))
	fmt.Fprintf(&b, "  Completions    %d total\n", stats.TotalCompletions(m.habits))

	b.WriteString("\n")
	b.WriteString(statHeaderStyle.Render("Last 7 days"))
	b.WriteString("\n")
	week := stats.WeekCompletions(m.habits, now)
	for i, count := range week {
		day := now.AddDate(0, 0, i-6)
		fmt.Fprintf(&b, "  %s  %s %d\n", dateutil.FormatDate(day), strings.Repeat("█", count), count)
	}

	return b.String()
}
