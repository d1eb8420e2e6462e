package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lumenwell/lumen/internal/models"
)

// moodPayload is the wire form of a daily mood submission. Field names
// match what the remote store expects.
type moodPayload struct {
	Mood         string  `json:"mood"`
	JournalEntry string  `json:"journalEntry"`
	Affirmation  string  `json:"affirmation"`
	SleepQuality float64 `json:"sleepQuality"`
	SelectedHour int     `json:"selectedHour"`
	SelectedFocus int    `json:"selectedFocus"`
}

// EncodeMood serializes an accepted entry into the mood wire payload. The
// same bytes are used for a live submission and for an outbox replay.
func EncodeMood(entry models.MoodEntry) ([]byte, error) {
	return json.Marshal(moodPayload{
		Mood:          entry.Mood,
		JournalEntry:  entry.Journal,
		Affirmation:   entry.Affirmation,
		SleepQuality:  entry.SleepQuality,
		SelectedHour:  entry.SleepHours,
		SelectedFocus: entry.Focus,
	})
}

// SubmitMood delivers an accepted entry to the remote store.
func (c *Client) SubmitMood(ctx context.Context, entry models.MoodEntry) error {
	body, err := EncodeMood(entry)
	if err != nil {
		return &NetworkError{Op: "POST /api/moods", Kind: KindMalformed, Err: err}
	}
	return c.doJSON(ctx, http.MethodPost, "/api/moods", body, nil)
}

// RemoteMood is one entry as reported by the remote store.
type RemoteMood struct {
	Mood         string  `json:"mood"`
	JournalEntry string  `json:"journalEntry"`
	Affirmation  string  `json:"affirmation"`
	SleepQuality float64 `json:"sleepQuality"`
	SelectedHour int     `json:"selectedHour"`
	SelectedFocus int    `json:"selectedFocus"`
	CreatedAt    string  `json:"createdAt"`
}

// FetchMoods retrieves the remote mood history, newest first as the remote
// returns it.
func (c *Client) FetchMoods(ctx context.Context) ([]RemoteMood, error) {
	var moods []RemoteMood
	if err := c.doJSON(ctx, http.MethodGet, "/api/moods", nil, &moods); err != nil {
		return nil, err
	}
	return moods, nil
}
