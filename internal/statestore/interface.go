package statestore

import "github.com/lumenwell/lumen/internal/models"

// Provider is the durable local state store behind the check-in engine.
// Writes are last-write-wins per key; a failed write leaves the previous
// value readable. Both backends survive process restarts.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// State is the key-value cache holding streak data and per-user
	// last-answered markers.
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error

	// Entries is the local cache of accepted mood entries, used for
	// degraded-mode history when the remote fetch fails.
	AddEntry(models.MoodEntry) error

	// RecordCheckin writes an accepted entry and the advanced streak
	// (as the streakData state value) atomically: a failure leaves
	// neither behind, so a check-in can always be retried.
	RecordCheckin(entry models.MoodEntry, streakJSON string) error
	GetEntry(date string) (models.MoodEntry, error)
	GetAllEntries() ([]models.MoodEntry, error)
	MarkEntrySynced(id string) error

	// Outbox queues remote payloads that failed to send.
	EnqueueOutbox(models.OutboxItem) error
	ListOutbox() ([]models.OutboxItem, error)
	DeleteOutbox(id string) error
	BumpOutboxAttempts(id string) error

	// Utils
	GetConfigPath() string
}
