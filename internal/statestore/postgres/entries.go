package postgres

import (
	"fmt"
	"time"

	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
)

func (s *Store) AddEntry(entry models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.EntryDate, entry.Mood, entry.Journal, entry.Affirmation,
		entry.SleepQuality, entry.SleepHours, entry.Focus,
		entry.CreatedAt.Format(time.RFC3339), entry.Synced)
	return err
}

// RecordCheckin writes an accepted entry and the advanced streak state in
// one transaction, so a failure leaves neither behind and the check-in can
// be retried. The entry upserts on entry_date so a retry after a partial
// failure converges instead of tripping the unique constraint.
func (s *Store) RecordCheckin(entry models.MoodEntry, streakJSON string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO entries (id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (entry_date) DO UPDATE SET
			id = EXCLUDED.id, mood = EXCLUDED.mood, journal = EXCLUDED.journal,
			affirmation = EXCLUDED.affirmation, sleep_quality = EXCLUDED.sleep_quality,
			sleep_hours = EXCLUDED.sleep_hours, focus = EXCLUDED.focus,
			created_at = EXCLUDED.created_at, synced = EXCLUDED.synced`,
		entry.ID, entry.EntryDate, entry.Mood, entry.Journal, entry.Affirmation,
		entry.SleepQuality, entry.SleepHours, entry.Focus,
		entry.CreatedAt.Format(time.RFC3339), entry.Synced)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO state (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		constants.StateKeyStreak, streakJSON, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetEntry(date string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced
		FROM entries WHERE entry_date = $1`, date)
	return scanEntry(row)
}

func (s *Store) GetAllEntries() ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced
		FROM entries ORDER BY entry_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) MarkEntrySynced(id string) error {
	_, err := s.db.Exec("UPDATE entries SET synced = TRUE WHERE id = $1", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.MoodEntry, error) {
	var e models.MoodEntry
	var createdAt string

	err := row.Scan(&e.ID, &e.EntryDate, &e.Mood, &e.Journal, &e.Affirmation,
		&e.SleepQuality, &e.SleepHours, &e.Focus, &createdAt, &e.Synced)
	if err != nil {
		return models.MoodEntry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}
