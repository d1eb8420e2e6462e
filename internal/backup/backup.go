// Package backup manages rotating copies of the sqlite database. Backups
// live in a backups/ directory next to the database file; only the most
// recent MaxBackups are kept.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lumenwell/lumen/internal/constants"
)

// MaxBackups is how many rotated backups are retained.
const MaxBackups = constants.MaxBackups

// Info describes one backup on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, and restores backups for one database file.
type Manager struct {
	dbPath string
}

// NewManager builds a Manager for the database at dbPath.
func NewManager(dbPath string) *Manager {
	return &Manager{dbPath: dbPath}
}

// GetBackupDir returns the directory backups are written to.
func (m *Manager) GetBackupDir() string {
	return filepath.Join(filepath.Dir(m.dbPath), constants.BackupDirName)
}

// CreateBackup copies the database into the backup directory with a
// timestamped name, then prunes backups past the retention limit. Returns
// the path of the new backup.
func (m *Manager) CreateBackup() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database not found at %s: %w", m.dbPath, err)
	}

	dir := m.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := constants.BackupFilePrefix + time.Now().Format("20060102-150405") + constants.BackupFileSuffix
	dest := filepath.Join(dir, name)

	if err := copyFile(m.dbPath, dest); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	if err := m.prune(); err != nil {
		return dest, fmt.Errorf("backup created but pruning failed: %w", err)
	}
	return dest, nil
}

// ListBackups returns the backups on disk, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	dir := m.GetBackupDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(dir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RestoreBackup replaces the database with the backup at backupPath. A
// safety copy of the current database is taken first, so a bad restore is
// itself recoverable.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found at %s: %w", backupPath, err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.CreateBackup(); err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.dbPath); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func (m *Manager) prune() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return err
		}
	}
	return nil
}

func isBackupName(name string) bool {
	return strings.HasPrefix(name, constants.BackupFilePrefix) &&
		strings.HasSuffix(name, constants.BackupFileSuffix)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
