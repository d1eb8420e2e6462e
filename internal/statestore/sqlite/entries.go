package sqlite

import (
	"fmt"
	"time"

	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
)

func (s *Store) AddEntry(entry models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.EntryDate, entry.Mood, entry.Journal, entry.Affirmation,
		entry.SleepQuality, entry.SleepHours, entry.Focus,
		entry.CreatedAt.Format(time.RFC3339), boolToInt(entry.Synced))
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_date) DO UPDATE SET
			id = excluded.id, mood = excluded.mood, journal = excluded.journal,
			affirmation = excluded.affirmation, sleep_quality = excluded.sleep_quality,
			sleep_hours = excluded.sleep_hours, focus = excluded.focus,
			created_at = excluded.created_at, synced = excluded.synced`,
		entry.ID, entry.EntryDate, entry.Mood, entry.Journal, entry.Affirmation,
		entry.SleepQuality, entry.SleepHours, entry.Focus,
		entry.CreatedAt.Format(time.RFC3339), boolToInt(entry.Synced))
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		constants.StateKeyStreak, streakJSON, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetEntry(date string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, entry_date, mood, journal, affirmation, sleep_quality, sleep_hours, focus, created_at, synced
		FROM entries WHERE entry_date = ?`, date)
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
	_, err := s.db.Exec("UPDATE entries SET synced = 1 WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.MoodEntry, error) {
	var e models.MoodEntry
	var createdAt string
	var synced int

	err := row.Scan(&e.ID, &e.EntryDate, &e.Mood, &e.Journal, &e.Affirmation,
		&e.SleepQuality, &e.SleepHours, &e.Focus, &createdAt, &synced)
	if err != nil {
		return models.MoodEntry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.Synced = synced != 0

	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
