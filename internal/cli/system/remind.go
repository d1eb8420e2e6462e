package system

import (
	"fmt"

	"github.com/lumenwell/lumen/internal/cli"
	"github.com/lumenwell/lumen/internal/notifier"
)

// RemindCmd is run periodically by the tray app or a cron entry; it nudges
// the user when today's check-in is still open.
type RemindCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	status, err := engine.Status()
	if err != nil {
		return err
	}

	var msg string
	switch {
	case !status.MoodDoneToday && !status.QuestionnaireDoneToday:
		msg = "Time for your daily check-in and questionnaire."
	case !status.MoodDoneToday:
		msg = "You haven't checked in today."
	case !status.QuestionnaireDoneToday:
		msg = "Today's questionnaire is still open."
	default:
		if c.DryRun {
			fmt.Println("Everything done for today, no reminder needed.")
		}
		return nil
	}
	if status.Streak.CurrentStreak > 0 {
		msg += fmt.Sprintf(" Keep your %d day streak going!", status.Streak.CurrentStreak)
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}
	return notifier.New().Notify(msg)
}
