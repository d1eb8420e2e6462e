package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
)

// ProblemType represents the type of validation problem
type ProblemType string

const (
	ProblemUnknownMood       ProblemType = "unknown_mood"
	ProblemEmptyJournal      ProblemType = "empty_journal"
	ProblemEmptyAffirmation  ProblemType = "empty_affirmation"
	ProblemSleepQualityRange ProblemType = "sleep_quality_range"
	ProblemSleepQualityNaN   ProblemType = "sleep_quality_nan"
	ProblemSleepHoursRange   ProblemType = "sleep_hours_range"
	ProblemUnknownFocus      ProblemType = "unknown_focus"
)

// Problem represents one rejected field of a check-in draft
type Problem struct {
	Type        ProblemType
	Field       string
	Description string
}

// Result contains all detected problems for one draft
type Result struct {
	Problems []Problem
}

// HasProblems reports whether the draft was rejected
func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

// FormatReport renders the problems as a human-readable list
func (r *Result) FormatReport() string {
	if !r.HasProblems() {
		return "draft is valid"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "found %d problem(s):\n", len(r.Problems))
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "  - %s: %s\n", p.Field, p.Description)
	}
	return b.String()
}

// Validator checks check-in drafts against the entry rules
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDraft checks every field of a mood entry draft. All problems are
// collected rather than stopping at the first, so the user can fix the
// whole form in one pass.
func (v *Validator) ValidateDraft(draft models.MoodEntryDraft) *Result {
	result := &Result{}

	if !constants.IsValidMood(draft.Mood) {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemUnknownMood,
			Field:       "mood",
			Description: fmt.Sprintf("%q is not a known mood (one of %s)", draft.Mood, strings.Join(constants.Moods, ", ")),
		})
	}

	if strings.TrimSpace(draft.Journal) == "" {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemEmptyJournal,
			Field:       "journalEntry",
			Description: "journal entry must not be empty",
		})
	}

	if strings.TrimSpace(draft.Affirmation) == "" {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemEmptyAffirmation,
			Field:       "affirmation",
			Description: "affirmation must not be empty",
		})
	}

	if math.IsNaN(draft.SleepQuality) || math.IsInf(draft.SleepQuality, 0) {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemSleepQualityNaN,
			Field:       "sleepQuality",
			Description: "must be a finite number",
		})
	} else if draft.SleepQuality < constants.SleepQualityMin || draft.SleepQuality > constants.SleepQualityMax {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemSleepQualityRange,
			Field:       "sleepQuality",
			Description: fmt.Sprintf("%.1f is outside [%.0f, %.0f]", draft.SleepQuality, constants.SleepQualityMin, constants.SleepQualityMax),
		})
	}

	if draft.SleepHours < constants.SleepHoursMin || draft.SleepHours > constants.SleepHoursMax {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemSleepHoursRange,
			Field:       "selectedHour",
			Description: fmt.Sprintf("%d is outside [%d, %d]", draft.SleepHours, constants.SleepHoursMin, constants.SleepHoursMax),
		})
	}

	if draft.Focus < 0 || draft.Focus >= len(constants.FocusCategories) {
		result.Problems = append(result.Problems, Problem{
			Type:        ProblemUnknownFocus,
			Field:       "selectedFocus",
			Description: fmt.Sprintf("%d is not a focus category index (0-%d)", draft.Focus, len(constants.FocusCategories)-1),
		})
	}

	return result
}
