package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lumenwell/lumen/internal/checkin"
	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/questionnaire"
)

// CheckinFormModel holds the check-in form fields while the user types.
type CheckinFormModel struct {
	Mood         string
	Journal      string
	Affirmation  string
	SleepQuality string
	SleepHours   int
	Focus        int
}

type Model struct {
	engine *checkin.Orchestrator

	state  constants.SessionState
	status checkin.Status

	form        *huh.Form
	checkinForm *CheckinFormModel
	flow        *questionnaire.Flow
	answerValue int

	history       table.Model
	historySource string

	message  string
	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(engine *checkin.Orchestrator) Model {
	m := Model{
		engine: engine,
		state:  constants.StateDashboard,
	}
	m.refreshStatus()
	return m
}

func (m *Model) refreshStatus() {
	status, err := m.engine.Status()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.status = status
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Messages produced by background commands.

type historyLoadedMsg struct {
	entries []models.MoodEntry
	source  string
	err     error
}

type moodSubmittedMsg struct {
	conf models.Confirmation
	err  error
}

type questionnaireDoneMsg struct {
	synced bool
	err    error
}

type syncDoneMsg struct {
	sent      int
	remaining int
	err       error
}

func loadHistoryCmd(engine *checkin.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		entries, source, err := engine.History(ctx)
		return historyLoadedMsg{entries: entries, source: source, err: err}
	}
}

func submitMoodCmd(engine *checkin.Orchestrator, draft models.MoodEntryDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		conf, err := engine.SubmitDailyMood(ctx, draft)
		return moodSubmittedMsg{conf: conf, err: err}
	}
}

func finalizeQuestionnaireCmd(flow *questionnaire.Flow) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		synced, err := flow.Finalize(ctx)
		return questionnaireDoneMsg{synced: synced, err: err}
	}
}

func syncCmd(engine *checkin.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		sent, remaining, err := engine.FlushOutbox(ctx)
		return syncDoneMsg{sent: sent, remaining: remaining, err: err}
	}
}

func requireText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}

// newCheckinForm builds the two-page daily check-in form.
func newCheckinForm(fm *CheckinFormModel) *huh.Form {
	moodOptions := make([]huh.Option[string], len(constants.Moods))
	for i, mood := range constants.Moods {
		moodOptions[i] = huh.NewOption(mood, mood)
	}
	focusOptions := make([]huh.Option[int], len(constants.FocusCategories))
	for i, f := range constants.FocusCategories {
		focusOptions[i] = huh.NewOption(f, i)
	}
	hourOptions := make([]huh.Option[int], constants.SleepHoursMax+1)
	for h := constants.SleepHoursMin; h <= constants.SleepHoursMax; h++ {
		hourOptions[h] = huh.NewOption(fmt.Sprintf("%d hours", h), h)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling today?").
				Options(moodOptions...).
				Value(&fm.Mood),
			huh.NewText().
				Title("Journal").
				Placeholder("What's on your mind?").
				Validate(requireText("journal entry")).
				Value(&fm.Journal),
			huh.NewInput().
				Title("Affirmation").
				Validate(requireText("affirmation")).
				Value(&fm.Affirmation),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep quality (0-10)").
				Value(&fm.SleepQuality).
				Validate(func(s string) error {
					q, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("enter a number")
					}
					if q < constants.SleepQualityMin || q > constants.SleepQualityMax {
						return fmt.Errorf("must be between %.0f and %.0f", constants.SleepQualityMin, constants.SleepQualityMax)
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Hours slept").
				Options(hourOptions...).
				Value(&fm.SleepHours),
			huh.NewSelect[int]().
				Title("Today's focus").
				Options(focusOptions...).
				Value(&fm.Focus),
		),
	)
}

// newAnswerForm builds a single-question Likert form.
func newAnswerForm(index int, question string, value *int) *huh.Form {
	options := make([]huh.Option[int], constants.AnswerMax-constants.AnswerMin+1)
	for v := constants.AnswerMin; v <= constants.AnswerMax; v++ {
		options[v-constants.AnswerMin] = huh.NewOption(constants.AnswerLabels[v-constants.AnswerMin], v)
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(fmt.Sprintf("(%d/%d) %s", index+1, len(constants.Questions), question)).
			Options(options...).
			Value(value),
	))
}

func newHistoryTable(entries []models.MoodEntry, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Mood", Width: 10},
		{Title: "Sleep", Width: 10},
		{Title: "Hours", Width: 6},
		{Title: "Focus", Width: 12},
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		focus := ""
		if e.Focus >= 0 && e.Focus < len(constants.FocusCategories) {
			focus = constants.FocusCategories[e.Focus]
		}
		rows[i] = table.Row{
			e.EntryDate,
			e.Mood,
			constants.SleepQualityLabel(e.SleepQuality),
			strconv.Itoa(e.SleepHours),
			focus,
		}
	}
	if height < 5 {
		height = 10
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
}
