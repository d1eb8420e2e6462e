package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/lumenwell/lumen/internal/models"
)

func validDraft() models.MoodEntryDraft {
	return models.MoodEntryDraft{
		Mood:         "Happy",
		Journal:      "good day",
		Affirmation:  "I am calm",
		SleepQuality: 7,
		SleepHours:   8,
		Focus:        0,
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	validator := New()

	result := validator.ValidateDraft(validDraft())
	if result.HasProblems() {
		t.Errorf("expected valid draft, got: %s", result.FormatReport())
	}
}

func TestValidateDraft_EmptyTextFieldsRejected(t *testing.T) {
	validator := New()

	draft := validDraft()
	draft.Journal = "   "
	draft.Affirmation = ""
	result := validator.ValidateDraft(draft)
	if !hasProblem(result, ProblemEmptyJournal) {
		t.Error("whitespace-only journal should be rejected")
	}
	if !hasProblem(result, ProblemEmptyAffirmation) {
		t.Error("empty affirmation should be rejected")
	}
}

func TestValidateDraft_UnknownMood(t *testing.T) {
	validator := New()

	for _, mood := range []string{"", "happy", "Ecstatic"} {
		draft := validDraft()
		draft.Mood = mood
		result := validator.ValidateDraft(draft)
		if !hasProblem(result, ProblemUnknownMood) {
			t.Errorf("mood %q should be rejected", mood)
		}
	}
}

func TestValidateDraft_SleepQualityBounds(t *testing.T) {
	validator := New()

	tests := []struct {
		quality float64
		want    ProblemType
		valid   bool
	}{
		{0, "", true},
		{10, "", true},
		{5.5, "", true},
		{-0.1, ProblemSleepQualityRange, false},
		{10.1, ProblemSleepQualityRange, false},
		{math.NaN(), ProblemSleepQualityNaN, false},
		{math.Inf(1), ProblemSleepQualityNaN, false},
	}
	for _, tt := range tests {
		draft := validDraft()
		draft.SleepQuality = tt.quality
		result := validator.ValidateDraft(draft)
		if tt.valid {
			if result.HasProblems() {
				t.Errorf("sleepQuality %v should pass, got: %s", tt.quality, result.FormatReport())
			}
			continue
		}
		if !hasProblem(result, tt.want) {
			t.Errorf("sleepQuality %v should be rejected with %s", tt.quality, tt.want)
		}
	}
}

func TestValidateDraft_SleepHoursBounds(t *testing.T) {
	validator := New()

	for _, hours := range []int{0, 12} {
		draft := validDraft()
		draft.SleepHours = hours
		if result := validator.ValidateDraft(draft); result.HasProblems() {
			t.Errorf("selectedHour %d should pass", hours)
		}
	}
	for _, hours := range []int{-1, 13, 24} {
		draft := validDraft()
		draft.SleepHours = hours
		if result := validator.ValidateDraft(draft); !hasProblem(result, ProblemSleepHoursRange) {
			t.Errorf("selectedHour %d should be rejected", hours)
		}
	}
}

func TestValidateDraft_FocusIndex(t *testing.T) {
	validator := New()

	for _, focus := range []int{0, 1, 2, 3} {
		draft := validDraft()
		draft.Focus = focus
		if result := validator.ValidateDraft(draft); result.HasProblems() {
			t.Errorf("selectedFocus %d should pass", focus)
		}
	}
	for _, focus := range []int{-1, 4} {
		draft := validDraft()
		draft.Focus = focus
		if result := validator.ValidateDraft(draft); !hasProblem(result, ProblemUnknownFocus) {
			t.Errorf("selectedFocus %d should be rejected", focus)
		}
	}
}

func TestValidateDraft_CollectsAllProblems(t *testing.T) {
	validator := New()

	draft := models.MoodEntryDraft{Mood: "nope", SleepQuality: 99, SleepHours: -5, Focus: 8}
	result := validator.ValidateDraft(draft)
	if len(result.Problems) != 6 {
		t.Errorf("expected 6 problems, got %d: %s", len(result.Problems), result.FormatReport())
	}
	if !strings.Contains(result.FormatReport(), "6 problem(s)") {
		t.Errorf("unexpected report: %s", result.FormatReport())
	}
}

func hasProblem(r *Result, pt ProblemType) bool {
	for _, p := range r.Problems {
		if p.Type == pt {
			return true
		}
	}
	return false
}
