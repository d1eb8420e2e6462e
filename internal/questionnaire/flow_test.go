package questionnaire

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumenwell/lumen/internal/constants"
	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/models"
)

type fakeStore struct {
	values map[string]string
	outbox []models.OutboxItem
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) GetValue(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) SetValue(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *fakeStore) EnqueueOutbox(item models.OutboxItem) error {
	s.outbox = append(s.outbox, item)
	return nil
}

type fakeSender struct {
	err     error
	userID  string
	answers map[int]int
	calls   int
}

func (f *fakeSender) SubmitAnswers(_ context.Context, userID string, answers map[int]int) error {
	f.calls++
	f.userID = userID
	f.answers = answers
	return f.err
}

var testDay = time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

func answerAll(t *testing.T, f *Flow) {
	t.Helper()
	for i := 0; i < len(constants.Questions); i++ {
		if err := f.Answer(3); err != nil {
			t.Fatalf("Answer(%d) failed: %v", i, err)
		}
	}
}

func TestFlowAnswersInOrder(t *testing.T) {
	f, err := New(newFakeStore(), &fakeSender{}, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := range constants.Questions {
		idx, question, ok := f.Current()
		if !ok {
			t.Fatalf("Current() not ok at question %d", i)
		}
		if idx != i || question != constants.Questions[i] {
			t.Errorf("Current() = (%d, %q), want (%d, %q)", idx, question, i, constants.Questions[i])
		}
		if err := f.Answer(i%5 + 1); err != nil {
			t.Fatalf("Answer failed: %v", err)
		}
	}

	if f.State() != StateCompleted {
		t.Errorf("state = %v, want StateCompleted", f.State())
	}
	if f.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", f.Remaining())
	}
	if _, _, ok := f.Current(); ok {
		t.Error("Current() should not be ok after completion")
	}
	if err := f.Answer(3); !errors.Is(err, lumenerrors.ErrSessionFinished) {
		t.Errorf("Answer after completion = %v, want ErrSessionFinished", err)
	}
}

func TestFlowRejectsOutOfRangeAnswers(t *testing.T) {
	f, err := New(newFakeStore(), &fakeSender{}, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, value := range []int{0, 6, -1, 100} {
		err := f.Answer(value)
		if _, ok := lumenerrors.IsValidation(err); !ok {
			t.Errorf("Answer(%d) = %v, want ValidationError", value, err)
		}
	}

	// A rejected answer does not advance the flow.
	idx, _, _ := f.Current()
	if idx != 0 {
		t.Errorf("flow advanced past question 0 after invalid answers")
	}
}

func TestFlowBlockedWhenAlreadyAnsweredToday(t *testing.T) {
	store := newFakeStore()
	store.values["lastAnsweredDate_u1"] = "2026-08-28"

	f, err := New(store, &fakeSender{}, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f.State() != StateBlocked {
		t.Fatalf("state = %v, want StateBlocked", f.State())
	}
	if err := f.Answer(3); !errors.Is(err, lumenerrors.ErrSessionFinished) {
		t.Errorf("Answer on blocked flow = %v, want ErrSessionFinished", err)
	}
	if _, err := f.Finalize(context.Background()); !errors.Is(err, lumenerrors.ErrAlreadyCheckedInToday) {
		t.Errorf("Finalize on blocked flow = %v, want ErrAlreadyCheckedInToday", err)
	}
}

func TestFlowUnblockedNextDay(t *testing.T) {
	store := newFakeStore()
	store.values["lastAnsweredDate_u1"] = "2026-08-27"

	f, err := New(store, &fakeSender{}, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f.State() != StateAwaitingAnswer {
		t.Errorf("state = %v, want StateAwaitingAnswer", f.State())
	}
}

func TestFlowGatesPerUser(t *testing.T) {
	store := newFakeStore()
	store.values["lastAnsweredDate_u1"] = "2026-08-28"

	f, err := New(store, &fakeSender{}, "u2", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if f.State() != StateAwaitingAnswer {
		t.Errorf("u2 should not be blocked by u1's marker")
	}
}

func TestFinalizeDeliversAndMarks(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{}
	f, err := New(store, sender, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	answerAll(t, f)

	synced, err := f.Finalize(context.Background())
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if !synced {
		t.Error("expected synced = true on live delivery")
	}
	if sender.userID != "u1" || len(sender.answers) != len(constants.Questions) {
		t.Errorf("unexpected delivery: userID=%q answers=%v", sender.userID, sender.answers)
	}
	if store.values["lastAnsweredDate_u1"] != "2026-08-28" {
		t.Errorf("marker = %q, want 2026-08-28", store.values["lastAnsweredDate_u1"])
	}
	if len(store.outbox) != 0 {
		t.Errorf("nothing should be queued on live delivery, got %d items", len(store.outbox))
	}
}

func TestFinalizeCompletesLocallyOnNetworkFailure(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{err: errors.New("connection refused")}
	f, err := New(store, sender, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	answerAll(t, f)

	synced, err := f.Finalize(context.Background())
	if err != nil {
		t.Fatalf("Finalize should not fail on delivery error, got: %v", err)
	}
	if synced {
		t.Error("expected synced = false on delivery failure")
	}
	// The day still counts as answered.
	if store.values["lastAnsweredDate_u1"] != "2026-08-28" {
		t.Errorf("marker = %q, want 2026-08-28", store.values["lastAnsweredDate_u1"])
	}
	// And the payload is queued for a later flush.
	if len(store.outbox) != 1 {
		t.Fatalf("expected 1 outbox item, got %d", len(store.outbox))
	}
	if store.outbox[0].Kind != models.OutboxKindAnswers {
		t.Errorf("outbox kind = %q, want %q", store.outbox[0].Kind, models.OutboxKindAnswers)
	}
}

func TestFinalizeRequiresAllAnswers(t *testing.T) {
	f, err := New(newFakeStore(), &fakeSender{}, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := f.Answer(2); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if _, err := f.Finalize(context.Background()); err == nil {
		t.Error("expected Finalize to fail with answers remaining")
	}
}

func TestFinalizeMarkerWriteFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("disk full")
	sender := &fakeSender{}
	f, err := New(store, sender, "u1", testDay)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	answerAll(t, f)

	if _, err := f.Finalize(context.Background()); err == nil {
		t.Fatal("expected Finalize to fail when the marker write fails")
	}
	if sender.calls != 0 {
		t.Error("delivery should not be attempted when the durable write fails")
	}
}
