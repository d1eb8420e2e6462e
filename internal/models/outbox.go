package models

import "time"

// Outbox payload kinds
const (
	OutboxKindMood    = "mood"
	OutboxKindAnswers = "answers"
)

// OutboxItem is a remote payload that failed to send and is queued for a
// later flush. Payload holds the JSON request body exactly as it would have
// been sent.
type OutboxItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	Attempts  int       `json:"attempts"`
}
