package settings

import (
	"path/filepath"
	"testing"

	"github.com/lumenwell/lumen/internal/cli"
	"github.com/lumenwell/lumen/internal/statestore/sqlite"
)

func newTestContext(t *testing.T) *cli.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumen.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store, Config: path}
}

func TestSettingsUpdatePersists(t *testing.T) {
	ctx := newTestContext(t)

	userID := "user-7"
	timeout := 20
	cmd := &SettingsCmd{UserID: &userID, RequestTimeoutSec: &timeout}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.UserID != "user-7" || settings.RequestTimeoutSec != 20 {
		t.Errorf("settings not persisted: %+v", settings)
	}
}

func TestSettingsRejectsInvalidTimezone(t *testing.T) {
	ctx := newTestContext(t)

	tz := "Not/AZone"
	cmd := &SettingsCmd{Timezone: &tz}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected invalid timezone to be rejected")
	}
}

func TestSettingsRejectsNonPositiveTimeout(t *testing.T) {
	ctx := newTestContext(t)

	timeout := 0
	cmd := &SettingsCmd{RequestTimeoutSec: &timeout}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected zero timeout to be rejected")
	}
}

func TestSettingsListDoesNotMutate(t *testing.T) {
	ctx := newTestContext(t)

	before, _ := ctx.Store.GetSettings()
	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	after, _ := ctx.Store.GetSettings()
	if before != after {
		t.Errorf("list changed settings: %+v -> %+v", before, after)
	}
}
