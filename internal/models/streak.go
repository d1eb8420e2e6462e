package models

// StreakData tracks consecutive-day check-in statistics. LastEntryDate is a
// YYYY-MM-DD string, empty when no entry has ever been accepted. The JSON
// field names match the persisted streakData state key.
//
// Invariants: LongestStreak >= CurrentStreak, and TotalEntries increases by
// exactly one per accepted check-in.
type StreakData struct {
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	TotalEntries  int    `json:"totalEntries"`
	LastEntryDate string `json:"lastEntryDate"`
}
