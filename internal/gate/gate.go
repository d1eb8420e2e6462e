// Package gate implements the per-day idempotency check that prevents
// duplicate check-ins. Mood entries and questionnaire completions share
// the rule but track separate last-date markers.
package gate

import (
	"time"

	"github.com/lumenwell/lumen/internal/utils"
)

// Kind distinguishes the two independently gated check-in types.
type Kind string

const (
	KindMood          Kind = "mood"
	KindQuestionnaire Kind = "questionnaire"
)

// CanCheckIn reports whether a new check-in is permitted for the calendar
// day containing today. lastDate is a YYYY-MM-DD string, empty when no
// check-in has ever been recorded.
//
// Only calendar-date equality blocks. A lastDate in the future (clock
// skew) is not today, so it permits a check-in now and blocks again when
// that date arrives.
func CanCheckIn(today time.Time, lastDate string) bool {
	if lastDate == "" {
		return true
	}
	return lastDate != utils.DateString(today)
}
