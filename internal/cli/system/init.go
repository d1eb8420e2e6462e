package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumenwell/lumen/internal/cli"
	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/statestore"
	"github.com/lumenwell/lumen/internal/statestore/postgres"
	"github.com/lumenwell/lumen/internal/statestore/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized lumen storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore statestore.Provider
	if strings.HasPrefix(sourcePath, "postgres://") || strings.HasPrefix(sourcePath, "postgresql://") {
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = postgres.New(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating entries...")
	entries, err := sourceStore.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get entries from source: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Store.AddEntry(entry); err != nil {
			return fmt.Errorf("failed to add entry %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d entries\n", len(entries))

	fmt.Println("  Migrating streak and check-in markers...")
	migratedKeys := 0
	for _, key := range stateKeys(sourceStore) {
		value, found, err := sourceStore.GetValue(key)
		if err != nil {
			return fmt.Errorf("failed to read state key %s: %w", key, err)
		}
		if !found {
			continue
		}
		if err := ctx.Store.SetValue(key, value); err != nil {
			return fmt.Errorf("failed to write state key %s: %w", key, err)
		}
		migratedKeys++
	}
	fmt.Printf("    Migrated %d state keys\n", migratedKeys)

	fmt.Println("  Migrating outbox...")
	items, err := sourceStore.ListOutbox()
	if err != nil {
		return fmt.Errorf("failed to list source outbox: %w", err)
	}
	for _, item := range items {
		if err := ctx.Store.EnqueueOutbox(item); err != nil {
			return fmt.Errorf("failed to enqueue outbox item %s: %w", item.ID, err)
		}
	}
	fmt.Printf("    Migrated %d outbox items\n", len(items))

	return nil
}

// stateKeys enumerates the state keys worth carrying to a new database:
// the streak, plus the per-user answered marker for the configured user.
func stateKeys(source statestore.Provider) []string {
	keys := []string{constants.StateKeyStreak}
	if settings, err := source.GetSettings(); err == nil && settings.UserID != "" {
		keys = append(keys, constants.StateKeyLastAnsweredPrefix+settings.UserID)
	}
	return keys
}
