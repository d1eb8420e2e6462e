package models

import "time"

// MoodEntryDraft holds the user-supplied fields of a daily check-in before
// validation. Drafts are assembled by the CLI/TUI layer and handed to the
// check-in orchestrator.
type MoodEntryDraft struct {
	Mood         string  `json:"mood"`
	Journal      string  `json:"journalEntry"`
	Affirmation  string  `json:"affirmation"`
	SleepQuality float64 `json:"sleepQuality"`
	SleepHours   int     `json:"selectedHour"`
	Focus        int     `json:"selectedFocus"`
}

// MoodEntry is an accepted daily check-in. Entries are immutable once
// accepted; a later day's entry supersedes, never edits, an earlier one.
type MoodEntry struct {
	ID           string    `json:"id"`
	Mood         string    `json:"mood"`
	Journal      string    `json:"journalEntry"`
	Affirmation  string    `json:"affirmation"`
	SleepQuality float64   `json:"sleepQuality"`
	SleepHours   int       `json:"selectedHour"`
	Focus        int       `json:"selectedFocus"`
	EntryDate    string    `json:"entryDate"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
	Synced       bool      `json:"synced"`
}

// Confirmation is the successful result of a daily mood submission. Synced
// is false when the entry was accepted locally but could not be delivered
// to the remote store; the entry is queued for a later flush in that case.
type Confirmation struct {
	Entry  MoodEntry  `json:"entry"`
	Streak StreakData `json:"streak"`
	Synced bool       `json:"synced"`
}
