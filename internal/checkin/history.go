package checkin

import (
	"context"
	"time"

	"github.com/lumenwell/lumen/internal/gateway"
	"github.com/lumenwell/lumen/internal/logger"
	"github.com/lumenwell/lumen/internal/models"
)

// History sources, in preference order.
const (
	HistorySourceRemote = "remote"
	HistorySourceLocal  = "local"
	HistorySourceSample = "sample"
)

// History returns the mood history and where it came from. The remote
// store is authoritative; when it cannot be reached the local entry cache
// serves as a degraded fallback. Placeholder sample data is only shown
// when the allow_sample_history setting is on and nothing real exists.
func (o *Orchestrator) History(ctx context.Context) ([]models.MoodEntry, string, error) {
	moods, err := o.remote.FetchMoods(ctx)
	if err == nil {
		return remoteToEntries(moods), HistorySourceRemote, nil
	}
	logger.Debug("remote history unavailable, using local cache", "error", err)

	entries, localErr := o.store.GetAllEntries()
	if localErr != nil {
		return nil, "", localErr
	}
	if len(entries) > 0 {
		return entries, HistorySourceLocal, nil
	}

	if o.settings.AllowSampleHistory {
		return sampleHistory(o.now()), HistorySourceSample, nil
	}
	// Nothing local and no sample data: surface the remote failure.
	return nil, "", err
}

func remoteToEntries(moods []gateway.RemoteMood) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0, len(moods))
	for _, m := range moods {
		entry := models.MoodEntry{
			Mood:         m.Mood,
			Journal:      m.JournalEntry,
			Affirmation:  m.Affirmation,
			SleepQuality: m.SleepQuality,
			SleepHours:   m.SelectedHour,
			Focus:        m.SelectedFocus,
			Synced:       true,
		}
		if t, err := time.Parse(time.RFC3339, m.CreatedAt); err == nil {
			entry.CreatedAt = t
			entry.EntryDate = t.Format("2006-01-02")
		}
		entries = append(entries, entry)
	}
	return entries
}

// sampleHistory fabricates a short recent history for development setups
// with no remote and an empty local cache.
func sampleHistory(now time.Time) []models.MoodEntry {
	moods := []string{"Happy", "Meh", "Anxious"}
	entries := make([]models.MoodEntry, len(moods))
	for i, mood := range moods {
		day := now.AddDate(0, 0, -i)
		entries[i] = models.MoodEntry{
			Mood:         mood,
			Journal:      "(sample entry)",
			SleepQuality: 6,
			SleepHours:   7,
			EntryDate:    day.Format("2006-01-02"),
			CreatedAt:    day,
		}
	}
	return entries
}
