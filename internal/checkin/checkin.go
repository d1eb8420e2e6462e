// Package checkin orchestrates the daily check-in: draft validation, the
// one-per-day gate, streak accounting, durable local persistence, and
// best-effort remote delivery with an outbox for failures.
package checkin

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/lumenwell/lumen/internal/constants"
	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/gate"
	"github.com/lumenwell/lumen/internal/gateway"
	"github.com/lumenwell/lumen/internal/logger"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/statestore"
	"github.com/lumenwell/lumen/internal/streak"
	"github.com/lumenwell/lumen/internal/utils"
	"github.com/lumenwell/lumen/internal/validation"
)

// Outbox flushes are spaced out so a large backlog does not hammer the
// remote when connectivity returns.
const (
	flushInterval = 200 * time.Millisecond
	flushBurst    = 3
)

// Remote is the slice of the gateway the orchestrator needs.
type Remote interface {
	SubmitMood(ctx context.Context, entry models.MoodEntry) error
	FetchMoods(ctx context.Context) ([]gateway.RemoteMood, error)
	SubmitAnswers(ctx context.Context, userID string, answers map[int]int) error
	FetchAnswers(ctx context.Context, userID string) ([]gateway.RemoteAnswers, error)
	Replay(ctx context.Context, kind string, payload []byte) error
}

// Orchestrator coordinates the check-in engine. All mutating operations
// are serialized by an internal mutex, so concurrent submissions cannot
// both pass the daily gate.
type Orchestrator struct {
	store     statestore.Provider
	remote    Remote
	validator *validation.Validator
	settings  models.Settings
	limiter   *rate.Limiter

	mu  sync.Mutex
	now func() time.Time
}

// New builds an Orchestrator. "Now" is taken in the settings timezone so
// the calendar day rolls over at the user's local midnight.
func New(store statestore.Provider, remote Remote, settings models.Settings) *Orchestrator {
	return &Orchestrator{
		store:     store,
		remote:    remote,
		validator: validation.New(),
		settings:  settings,
		limiter:   rate.NewLimiter(rate.Every(flushInterval), flushBurst),
		now: func() time.Time {
			now, err := utils.NowInTimezone(settings.Timezone)
			if err != nil {
				return time.Now()
			}
			return now
		},
	}
}

// Settings returns the settings the orchestrator was built with.
func (o *Orchestrator) Settings() models.Settings {
	return o.settings
}

// Streak returns the persisted streak state, zero-valued when no entry has
// ever been accepted.
func (o *Orchestrator) Streak() (models.StreakData, error) {
	return o.loadStreak()
}

func (o *Orchestrator) loadStreak() (models.StreakData, error) {
	raw, found, err := o.store.GetValue(constants.StateKeyStreak)
	if err != nil {
		return models.StreakData{}, lumenerrors.NewStorage("read streak", err)
	}
	if !found {
		return models.StreakData{}, nil
	}
	var state models.StreakData
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.StreakData{}, lumenerrors.NewStorage("decode streak", err)
	}
	return state, nil
}

// SubmitDailyMood runs the full check-in pipeline for a draft. On success
// the entry and advanced streak are durably recorded locally; the returned
// confirmation's Synced flag reports whether live remote delivery also
// succeeded. A delivery failure queues the payload for FlushOutbox and is
// not an error.
//
// The daily gate is evaluated under the submission lock, so of two racing
// submissions exactly one is accepted.
func (o *Orchestrator) SubmitDailyMood(ctx context.Context, draft models.MoodEntryDraft) (models.Confirmation, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if result := o.validator.ValidateDraft(draft); result.HasProblems() {
		p := result.Problems[0]
		return models.Confirmation{}, lumenerrors.NewValidation(p.Field, p.Description)
	}

	now := o.now()
	state, err := o.loadStreak()
	if err != nil {
		return models.Confirmation{}, err
	}
	if !gate.CanCheckIn(now, state.LastEntryDate) {
		return models.Confirmation{}, lumenerrors.ErrAlreadyCheckedInToday
	}

	entry := models.MoodEntry{
		ID:           uuid.NewString(),
		Mood:         draft.Mood,
		Journal:      draft.Journal,
		Affirmation:  draft.Affirmation,
		SleepQuality: draft.SleepQuality,
		SleepHours:   draft.SleepHours,
		Focus:        draft.Focus,
		EntryDate:    utils.DateString(now),
		CreatedAt:    now.UTC(),
	}
	advanced := streak.Advance(now, state)

	// One transaction: a storage fault leaves neither the entry nor the
	// streak behind, so the user can simply retry.
	streakJSON, err := json.Marshal(advanced)
	if err != nil {
		return models.Confirmation{}, lumenerrors.NewStorage("encode streak", err)
	}
	if err := o.store.RecordCheckin(entry, string(streakJSON)); err != nil {
		return models.Confirmation{}, lumenerrors.NewStorage("record check-in", err)
	}

	synced := true
	if sendErr := o.remote.SubmitMood(ctx, entry); sendErr != nil {
		synced = false
		if err := o.queueMood(entry); err != nil {
			return models.Confirmation{}, err
		}
	} else {
		// Best effort; the entry is already durable either way.
		if err := o.store.MarkEntrySynced(entry.ID); err == nil {
			entry.Synced = true
		}
	}

	return models.Confirmation{Entry: entry, Streak: advanced, Synced: synced}, nil
}

func (o *Orchestrator) queueMood(entry models.MoodEntry) error {
	payload, err := gateway.EncodeMood(entry)
	if err != nil {
		return lumenerrors.NewStorage("encode mood payload", err)
	}
	item := models.OutboxItem{
		ID:        uuid.NewString(),
		Kind:      models.OutboxKindMood,
		Payload:   string(payload),
		CreatedAt: time.Now().UTC(),
	}
	if err := o.store.EnqueueOutbox(item); err != nil {
		return lumenerrors.NewStorage("queue mood for retry", err)
	}
	return nil
}

// Status summarizes today's position: the streak, and whether the mood
// entry and questionnaire are already done for the current calendar day.
type Status struct {
	Today                  string
	Streak                 models.StreakData
	MoodDoneToday          bool
	QuestionnaireDoneToday bool
	PendingOutbox          int
}

// Status reads the current day's state. The questionnaire marker is only
// consulted when a user id is configured.
func (o *Orchestrator) Status() (Status, error) {
	now := o.now()
	state, err := o.loadStreak()
	if err != nil {
		return Status{}, err
	}

	st := Status{
		Today:         utils.DateString(now),
		Streak:        state,
		MoodDoneToday: !gate.CanCheckIn(now, state.LastEntryDate),
	}

	if o.settings.UserID != "" {
		marker, _, err := o.store.GetValue(constants.StateKeyLastAnsweredPrefix + o.settings.UserID)
		if err != nil {
			return Status{}, lumenerrors.NewStorage("read last-answered marker", err)
		}
		st.QuestionnaireDoneToday = !gate.CanCheckIn(now, marker)
	}

	if items, err := o.store.ListOutbox(); err != nil {
		logger.Debug("outbox count unavailable", "error", err)
	} else {
		st.PendingOutbox = len(items)
	}

	return st, nil
}
