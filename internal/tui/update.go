package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/questionnaire"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.state = constants.StateDashboard
			return m, nil
		}
		m.history = newHistoryTable(msg.entries, m.height-8)
		m.historySource = msg.source
		m.state = constants.StateHistory
		return m, nil

	case moodSubmittedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.state = constants.StateDashboard
			m.refreshStatus()
			return m, nil
		}
		m.message = fmt.Sprintf("Checked in for %s — 🔥 %d day streak",
			msg.conf.Entry.EntryDate, msg.conf.Streak.CurrentStreak)
		if !msg.conf.Synced {
			m.message += " (saved locally, remote unreachable)"
		}
		m.state = constants.StateCompleted
		m.refreshStatus()
		return m, nil

	case questionnaireDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.state = constants.StateDashboard
			m.refreshStatus()
			return m, nil
		}
		m.message = "Questionnaire complete. Thanks for checking in with yourself."
		if !msg.synced {
			m.message += " (answers queued, remote unreachable)"
		}
		m.state = constants.StateCompleted
		m.refreshStatus()
		return m, nil

	case syncDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else if msg.sent == 0 && msg.remaining == 0 {
			m.message = "Nothing to sync."
		} else {
			m.message = fmt.Sprintf("Delivered %d payload(s), %d remaining.", msg.sent, msg.remaining)
		}
		m.refreshStatus()
		return m, nil
	}

	switch m.state {
	case constants.StateDashboard:
		return m.updateDashboard(msg)
	case constants.StateCheckin:
		return m.updateCheckin(msg)
	case constants.StateQuestionnaire:
		return m.updateQuestionnaire(msg)
	case constants.StateHistory:
		return m.updateHistory(msg)
	case constants.StateCompleted:
		return m.updateCompleted(msg)
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.errMsg = ""
	m.message = ""

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "c":
		if m.status.MoodDoneToday {
			m.message = "Already checked in today. See you tomorrow!"
			return m, nil
		}
		m.checkinForm = &CheckinFormModel{}
		m.form = newCheckinForm(m.checkinForm)
		m.state = constants.StateCheckin
		return m, m.form.Init()

	case "u":
		if m.status.QuestionnaireDoneToday {
			m.message = "Today's questionnaire is already done."
			return m, nil
		}
		flow, err := m.engine.NewQuestionnaire()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if flow.State() == questionnaire.StateBlocked {
			m.message = "Today's questionnaire is already done."
			return m, nil
		}
		m.flow = flow
		idx, question, _ := flow.Current()
		m.answerValue = constants.AnswerMin
		m.form = newAnswerForm(idx, question, &m.answerValue)
		m.state = constants.StateQuestionnaire
		return m, m.form.Init()

	case "h":
		return m, loadHistoryCmd(m.engine)

	case "s":
		return m, syncCmd(m.engine)
	}
	return m, nil
}

func (m Model) updateCheckin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = constants.StateDashboard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		quality, _ := strconv.ParseFloat(m.checkinForm.SleepQuality, 64)
		draft := models.MoodEntryDraft{
			Mood:         m.checkinForm.Mood,
			Journal:      m.checkinForm.Journal,
			Affirmation:  m.checkinForm.Affirmation,
			SleepQuality: quality,
			SleepHours:   m.checkinForm.SleepHours,
			Focus:        m.checkinForm.Focus,
		}
		return m, submitMoodCmd(m.engine, draft)
	case huh.StateAborted:
		m.state = constants.StateDashboard
		return m, nil
	}
	return m, cmd
}

func (m Model) updateQuestionnaire(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		// Abandoning mid-way discards the session; nothing was persisted yet.
		m.flow = nil
		m.state = constants.StateDashboard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.flow.Answer(m.answerValue); err != nil {
			m.errMsg = err.Error()
			m.state = constants.StateDashboard
			return m, nil
		}
		if idx, question, ok := m.flow.Current(); ok {
			m.answerValue = constants.AnswerMin
			m.form = newAnswerForm(idx, question, &m.answerValue)
			return m, m.form.Init()
		}
		return m, finalizeQuestionnaireCmd(m.flow)
	case huh.StateAborted:
		m.flow = nil
		m.state = constants.StateDashboard
		return m, nil
	}
	return m, cmd
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			m.state = constants.StateDashboard
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) updateCompleted(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.state = constants.StateDashboard
		return m, nil
	}
	return m, nil
}
