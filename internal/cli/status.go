package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	openStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	status, err := engine.Status()
	if err != nil {
		return err
	}

	mark := func(done bool, label string) string {
		if done {
			return doneStyle.Render("✓ " + label + " done")
		}
		return openStyle.Render("○ " + label + " pending")
	}

	card := fmt.Sprintf("%s\n\n", status.Today)
	card += streakStyle.Render(fmt.Sprintf("🔥 %d day streak", status.Streak.CurrentStreak))
	card += fmt.Sprintf("  (best %d, %d total entries)\n\n", status.Streak.LongestStreak, status.Streak.TotalEntries)
	card += mark(status.MoodDoneToday, "check-in") + "\n"
	card += mark(status.QuestionnaireDoneToday, "questionnaire")
	if status.PendingOutbox > 0 {
		card += "\n\n" + pendingStyle.Render(fmt.Sprintf("%d unsent payload(s) queued, run 'lumen sync'", status.PendingOutbox))
	}

	fmt.Println(cardStyle.Render(card))
	return nil
}
