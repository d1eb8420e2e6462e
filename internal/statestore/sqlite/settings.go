package sqlite

import (
	"fmt"

	"github.com/lumenwell/lumen/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "timezone":
			settings.Timezone = value
		case "remote_url":
			settings.RemoteURL = value
		case "user_id":
			settings.UserID = value
		case "request_timeout_sec":
			if _, err := fmt.Sscanf(value, "%d", &settings.RequestTimeoutSec); err != nil {
				return models.Settings{}, fmt.Errorf("parsing request_timeout_sec: %w", err)
			}
		case "notifications_enabled":
			settings.NotificationsEnabled = value == "true"
		case "allow_sample_history":
			settings.AllowSampleHistory = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("timezone", settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec("remote_url", settings.RemoteURL); err != nil {
		return err
	}
	if _, err := stmt.Exec("user_id", settings.UserID); err != nil {
		return err
	}
	if _, err := stmt.Exec("request_timeout_sec", fmt.Sprintf("%d", settings.RequestTimeoutSec)); err != nil {
		return err
	}
	if _, err := stmt.Exec("notifications_enabled", fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec("allow_sample_history", fmt.Sprintf("%v", settings.AllowSampleHistory)); err != nil {
		return err
	}

	return tx.Commit()
}
