package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenwell/lumen/internal/constants"
	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/models"
)

// completionMessages close out a check-in with a tone matched to the
// reported mood.
var completionMessages = map[string]string{
	"Happy":     "Wonderful! Keep riding that wave.",
	"Meh":       "Noted. Some days just are. Showing up still counts.",
	"Mad":       "Thanks for being honest. Tomorrow is a fresh start.",
	"Sad":       "Be gentle with yourself today.",
	"Anxious":   "One breath at a time. You've done the hard part by checking in.",
	"Depressed": "Thank you for checking in. That took real effort.",
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	streakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type CheckinCmd struct {
	Mood         string  `help:"Mood label (skips the interactive form when all flags are given)."`
	Journal      string  `help:"Journal entry text."`
	Affirmation  string  `help:"Daily affirmation text."`
	SleepQuality float64 `help:"Sleep quality score, 0-10." default:"-1"`
	SleepHours   int     `help:"Hours slept, 0-12." default:"-1"`
	Focus        string  `help:"Focus category."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	// Fail fast before showing the form.
	status, err := engine.Status()
	if err != nil {
		return err
	}
	if status.MoodDoneToday {
		return lumenerrors.ErrAlreadyCheckedInToday
	}

	draft, err := c.buildDraft()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	conf, err := engine.SubmitDailyMood(reqCtx, draft)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	printConfirmation(conf)
	return nil
}

// buildDraft uses the flag values when a complete draft was given,
// otherwise walks the interactive form.
func (c *CheckinCmd) buildDraft() (models.MoodEntryDraft, error) {
	if c.Mood != "" && c.SleepQuality >= 0 && c.SleepHours >= 0 && c.Focus != "" {
		focus, err := focusIndex(c.Focus)
		if err != nil {
			return models.MoodEntryDraft{}, err
		}
		return models.MoodEntryDraft{
			Mood:         c.Mood,
			Journal:      c.Journal,
			Affirmation:  c.Affirmation,
			SleepQuality: c.SleepQuality,
			SleepHours:   c.SleepHours,
			Focus:        focus,
		}, nil
	}
	return runCheckinForm()
}

func focusIndex(name string) (int, error) {
	for i, f := range constants.FocusCategories {
		if f == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown focus category %q", name)
}

func requireText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}

func runCheckinForm() (models.MoodEntryDraft, error) {
	var (
		draft        models.MoodEntryDraft
		sleepQuality string
	)

	moodOptions := make([]huh.Option[string], len(constants.Moods))
	for i, m := range constants.Moods {
		moodOptions[i] = huh.NewOption(m, m)
	}
	focusOptions := make([]huh.Option[int], len(constants.FocusCategories))
	for i, f := range constants.FocusCategories {
		focusOptions[i] = huh.NewOption(f, i)
	}
	hourOptions := make([]huh.Option[int], constants.SleepHoursMax+1)
	for h := constants.SleepHoursMin; h <= constants.SleepHoursMax; h++ {
		hourOptions[h] = huh.NewOption(fmt.Sprintf("%d hours", h), h)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling today?").
				Options(moodOptions...).
				Value(&draft.Mood),
			huh.NewText().
				Title("Journal").
				Placeholder("What's on your mind?").
				Validate(requireText("journal entry")).
				Value(&draft.Journal),
			huh.NewInput().
				Title("Affirmation").
				Placeholder("A phrase to carry through the day").
				Validate(requireText("affirmation")).
				Value(&draft.Affirmation),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep quality (0-10)").
				Value(&sleepQuality).
				Validate(func(s string) error {
					q, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return errors.New("enter a number")
					}
					if q < constants.SleepQualityMin || q > constants.SleepQualityMax {
						return fmt.Errorf("must be between %.0f and %.0f", constants.SleepQualityMin, constants.SleepQualityMax)
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Hours slept").
				Options(hourOptions...).
				Value(&draft.SleepHours),
			huh.NewSelect[int]().
				Title("Today's focus").
				Options(focusOptions...).
				Value(&draft.Focus),
		),
	)

	if err := form.Run(); err != nil {
		return models.MoodEntryDraft{}, err
	}
	draft.SleepQuality, _ = strconv.ParseFloat(sleepQuality, 64)
	return draft, nil
}

func printConfirmation(conf models.Confirmation) {
	lines := fmt.Sprintf("Checked in for %s\n\n", conf.Entry.EntryDate)
	lines += fmt.Sprintf("Mood:   %s\n", conf.Entry.Mood)
	lines += fmt.Sprintf("Sleep:  %s (%.1f), %d hours\n",
		constants.SleepQualityLabel(conf.Entry.SleepQuality), conf.Entry.SleepQuality, conf.Entry.SleepHours)
	lines += fmt.Sprintf("Focus:  %s\n\n", constants.FocusCategories[conf.Entry.Focus])
	lines += streakStyle.Render(fmt.Sprintf("🔥 %d day streak", conf.Streak.CurrentStreak))
	lines += fmt.Sprintf("  (best %d, %d total entries)", conf.Streak.LongestStreak, conf.Streak.TotalEntries)

	fmt.Println(cardStyle.Render(lines))

	if msg, ok := completionMessages[conf.Entry.Mood]; ok {
		fmt.Println(msg)
	}
	if !conf.Synced {
		fmt.Println(pendingStyle.Render("Saved locally; the remote is unreachable. Run 'lumen sync' later."))
	}
}
