package sqlite

import (
	"fmt"
	"time"

	"github.com/lumenwell/lumen/internal/models"
)

func (s *Store) EnqueueOutbox(item models.OutboxItem) error {
	_, err := s.db.Exec(`
		INSERT INTO outbox (id, kind, payload, created_at, attempts)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Kind, item.Payload, item.CreatedAt.Format(time.RFC3339), item.Attempts)
	return err
}

func (s *Store) ListOutbox() ([]models.OutboxItem, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, payload, created_at, attempts
		FROM outbox ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OutboxItem
	for rows.Next() {
		var item models.OutboxItem
		var createdAt string
		if err := rows.Scan(&item.ID, &item.Kind, &item.Payload, &createdAt, &item.Attempts); err != nil {
			return nil, err
		}
		item.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) DeleteOutbox(id string) error {
	_, err := s.db.Exec("DELETE FROM outbox WHERE id = ?", id)
	return err
}

func (s *Store) BumpOutboxAttempts(id string) error {
	_, err := s.db.Exec("UPDATE outbox SET attempts = attempts + 1 WHERE id = ?", id)
	return err
}
