package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumenwell/lumen/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateCheckin, constants.StateQuestionnaire:
		content = m.form.View()
	case constants.StateHistory:
		content = m.viewHistory()
	case constants.StateCompleted:
		content = m.viewCompleted()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("lumen"),
		content,
	)
	return docStyle.Render(ui)
}

func (m Model) viewDashboard() string {
	mark := func(done bool, label string) string {
		if done {
			return doneStyle.Render("✓ " + label + " done")
		}
		return mutedStyle.Render("○ " + label + " pending")
	}

	card := fmt.Sprintf("%s\n\n", m.status.Today)
	card += streakStyle.Render(fmt.Sprintf("🔥 %d day streak", m.status.Streak.CurrentStreak))
	card += fmt.Sprintf("  (best %d, %d total entries)\n\n", m.status.Streak.LongestStreak, m.status.Streak.TotalEntries)
	card += mark(m.status.MoodDoneToday, "check-in") + "\n"
	card += mark(m.status.QuestionnaireDoneToday, "questionnaire")
	if m.status.PendingOutbox > 0 {
		card += "\n\n" + warningStyle.Render(fmt.Sprintf("%d unsent payload(s) queued", m.status.PendingOutbox))
	}

	out := cardStyle.Render(card) + "\n"
	if m.message != "" {
		out += "\n" + m.message + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + dangerStyle.Render(m.errMsg) + "\n"
	}
	out += "\n" + mutedStyle.Render("c check-in · u questionnaire · h history · s sync · q quit")
	return out
}

func (m Model) viewHistory() string {
	header := ""
	switch m.historySource {
	case "local":
		header = warningStyle.Render("Remote unreachable, showing locally cached entries.") + "\n"
	case "sample":
		header = warningStyle.Render("Showing sample data.") + "\n"
	}
	return header + m.history.View() + "\n" + mutedStyle.Render("esc back")
}

func (m Model) viewCompleted() string {
	return cardStyle.Render(m.message) + "\n" + mutedStyle.Render("press any key to continue")
}
