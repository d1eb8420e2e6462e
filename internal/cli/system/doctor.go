package system

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"github.com/lumenwell/lumen/internal/backup"
	"github.com/lumenwell/lumen/internal/cli"
	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/migration"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/statestore"
	"github.com/lumenwell/lumen/internal/statestore/sqlite"
	"github.com/lumenwell/lumen/internal/utils"
	"github.com/lumenwell/lumen/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Migrations current (only if DB is reachable)
	if dbReachable {
		if err := checkMigrationsCurrent(ctx); err != nil {
			fmt.Printf("❌ Migrations current: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations current: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations current: SKIPPED (database not reachable)\n")
	}

	// Check 3: Backups present (warning only, sqlite backend)
	if !statestore.IsPostgres(ctx.Config) {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	}

	// Check 4: Clock/timezone sanity
	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: Streak integrity (only if DB is reachable)
	if dbReachable {
		if err := checkStreakIntegrity(ctx); err != nil {
			fmt.Printf("❌ Streak integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Streak integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Streak integrity: SKIPPED (database not reachable)\n")
	}

	// Check 6: Entry date formats (only if DB is reachable)
	if dbReachable {
		if err := checkEntryDates(ctx); err != nil {
			fmt.Printf("❌ Entry dates: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Entry dates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Entry dates: SKIPPED (database not reachable)\n")
	}

	// Check 7: Outbox backlog (warning only)
	if dbReachable {
		if n, err := checkOutboxBacklog(ctx); err != nil {
			fmt.Printf("❌ Outbox: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else if n > 0 {
			fmt.Printf("⚠ Outbox: %d unsent payload(s), run 'lumen sync'\n", n)
		} else {
			fmt.Printf("✓ Outbox: empty\n")
		}
	}

	// Check 8: Remote reachable (warning only; lumen works offline)
	if err := checkRemoteReachable(ctx); err != nil {
		fmt.Printf("⚠ Remote reachable: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Remote reachable: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}

func checkMigrationsCurrent(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Migration state for postgres is validated during Load.
		return nil
	}
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(store.GetDB(), subFS)
	current, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema at version %d, %d available; run 'lumen migrate'", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; one is created automatically after each check-in")
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %.0f days old", age.Hours()/24)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	timezone := "Local"
	if dbReachable {
		if settings, err := ctx.Store.GetSettings(); err == nil {
			timezone = settings.Timezone
		}
	}
	if !utils.ValidateTimezone(timezone) {
		return fmt.Errorf("configured timezone %q is not a valid IANA name", timezone)
	}
	now, err := utils.NowInTimezone(timezone)
	if err != nil {
		return err
	}
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkStreakIntegrity(ctx *cli.Context) error {
	raw, found, err := ctx.Store.GetValue(constants.StateKeyStreak)
	if err != nil {
		return err
	}
	if !found {
		return nil // fresh install
	}
	var state models.StreakData
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return fmt.Errorf("streak state is not valid JSON: %w", err)
	}
	if state.LongestStreak < state.CurrentStreak {
		return fmt.Errorf("longest streak %d is below current streak %d", state.LongestStreak, state.CurrentStreak)
	}
	if state.CurrentStreak < 0 || state.TotalEntries < 0 {
		return fmt.Errorf("negative streak counters: %+v", state)
	}
	if state.LastEntryDate != "" && !utils.ValidateDateFormat(state.LastEntryDate) {
		return fmt.Errorf("last entry date %q is not YYYY-MM-DD", state.LastEntryDate)
	}
	return nil
}

func checkEntryDates(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !utils.ValidateDateFormat(entry.EntryDate) {
			return fmt.Errorf("entry %s has malformed date %q", entry.ID, entry.EntryDate)
		}
	}
	return nil
}

func checkOutboxBacklog(ctx *cli.Context) (int, error) {
	items, err := ctx.Store.ListOutbox()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func checkRemoteReachable(ctx *cli.Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, _, err := engine.History(reqCtx); err != nil {
		return fmt.Errorf("remote fetch failed and no local cache exists: %v", err)
	}
	return nil
}
