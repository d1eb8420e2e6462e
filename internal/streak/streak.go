// Package streak computes consecutive-day check-in statistics. Advance is
// a pure function; the caller owns loading and persisting the StreakData
// value (no ambient state).
package streak

import (
	"time"

	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/utils"
)

// Advance returns the streak state after accepting a check-in on today's
// calendar day. The caller must have confirmed via the daily gate that a
// check-in is permitted; calling Advance when state.LastEntryDate already
// equals today is a caller error.
//
// A last entry on yesterday continues the streak; anything else, including
// a first-ever entry, starts a new streak at day one. LongestStreak never
// shrinks and TotalEntries increases by exactly one.
func Advance(today time.Time, state models.StreakData) models.StreakData {
	newStreak := 1
	if state.LastEntryDate == utils.YesterdayString(today) {
		newStreak = state.CurrentStreak + 1
	}

	longest := state.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	return models.StreakData{
		CurrentStreak: newStreak,
		LongestStreak: longest,
		TotalEntries:  state.TotalEntries + 1,
		LastEntryDate: utils.DateString(today),
	}
}
