// Package questionnaire drives the once-per-day emotional-state
// questionnaire: six Likert questions answered strictly in order, gated
// per user per calendar day.
package questionnaire

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumenwell/lumen/internal/constants"
	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/gate"
	"github.com/lumenwell/lumen/internal/gateway"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/utils"
)

// State is the flow's lifecycle position.
type State int

const (
	// StateBlocked means the user already completed today's questionnaire.
	StateBlocked State = iota
	// StateAwaitingAnswer means the flow is waiting on the current question.
	StateAwaitingAnswer
	// StateCompleted means all answers are recorded and finalized.
	StateCompleted
)

// Store is the slice of the state store the flow needs.
type Store interface {
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	EnqueueOutbox(models.OutboxItem) error
}

// Sender delivers a completed questionnaire to the remote store.
type Sender interface {
	SubmitAnswers(ctx context.Context, userID string, answers map[int]int) error
}

// Flow is one user's questionnaire session for one calendar day. It is not
// safe for concurrent use; the CLI and TUI drive it from a single
// goroutine.
type Flow struct {
	store   Store
	send    Sender
	session models.QuestionnaireSession
	state   State
	next    int
}

// markerKey returns the per-user last-answered state key.
func markerKey(userID string) string {
	return constants.StateKeyLastAnsweredPrefix + userID
}

// New builds the flow for userID on the calendar day containing now. If
// the user already answered today, the returned flow starts blocked.
func New(store Store, send Sender, userID string, now time.Time) (*Flow, error) {
	lastAnswered, _, err := store.GetValue(markerKey(userID))
	if err != nil {
		return nil, lumenerrors.NewStorage("read last-answered marker", err)
	}

	f := &Flow{
		store: store,
		send:  send,
		session: models.QuestionnaireSession{
			ID:        uuid.NewString(),
			UserID:    userID,
			Day:       utils.DateString(now),
			Answers:   make(map[int]int, len(constants.Questions)),
			StartedAt: now,
		},
		state: StateAwaitingAnswer,
	}
	if !gate.CanCheckIn(now, lastAnswered) {
		f.state = StateBlocked
	}
	return f, nil
}

// State returns the flow's current lifecycle position.
func (f *Flow) State() State {
	return f.state
}

// Session returns a copy of the session under accumulation.
func (f *Flow) Session() models.QuestionnaireSession {
	return f.session
}

// Current returns the index and text of the question awaiting an answer.
// ok is false when the flow is blocked or completed.
func (f *Flow) Current() (index int, question string, ok bool) {
	if f.state != StateAwaitingAnswer {
		return 0, "", false
	}
	return f.next, constants.Questions[f.next], true
}

// Answer records the Likert value for the current question and advances to
// the next one. Questions are answered strictly in order; there is no way
// to skip or revisit.
func (f *Flow) Answer(value int) error {
	if f.state != StateAwaitingAnswer {
		return lumenerrors.ErrSessionFinished
	}
	if value < constants.AnswerMin || value > constants.AnswerMax {
		return lumenerrors.NewValidation("answer",
			fmt.Sprintf("must be between %d and %d", constants.AnswerMin, constants.AnswerMax))
	}

	f.session.Answers[f.next] = value
	f.next++
	if f.next == len(constants.Questions) {
		f.state = StateCompleted
	}
	return nil
}

// Remaining returns how many questions are still unanswered.
func (f *Flow) Remaining() int {
	if f.state == StateBlocked {
		return 0
	}
	return len(constants.Questions) - f.next
}

// Finalize records today's completion and delivers the answers to the
// remote store. Completion is local-first: the last-answered marker is
// written before the network attempt, and a delivery failure queues the
// payload for a later flush instead of failing the questionnaire. The
// returned synced flag reports whether the live delivery succeeded.
func (f *Flow) Finalize(ctx context.Context) (synced bool, err error) {
	if f.state == StateBlocked {
		return false, lumenerrors.ErrAlreadyCheckedInToday
	}
	if f.state != StateCompleted {
		return false, fmt.Errorf("questionnaire incomplete: %d answers remaining", f.Remaining())
	}

	if err := f.store.SetValue(markerKey(f.session.UserID), f.session.Day); err != nil {
		return false, lumenerrors.NewStorage("write last-answered marker", err)
	}

	if sendErr := f.send.SubmitAnswers(ctx, f.session.UserID, f.session.Answers); sendErr != nil {
		payload, encErr := gateway.EncodeAnswers(f.session.UserID, f.session.Answers)
		if encErr != nil {
			return false, encErr
		}
		item := models.OutboxItem{
			ID:        uuid.NewString(),
			Kind:      models.OutboxKindAnswers,
			Payload:   string(payload),
			CreatedAt: time.Now().UTC(),
		}
		if qErr := f.store.EnqueueOutbox(item); qErr != nil {
			return false, lumenerrors.NewStorage("queue answers for retry", qErr)
		}
		return false, nil
	}
	return true, nil
}
