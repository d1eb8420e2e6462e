package cli

import (
	"errors"

	"github.com/lumenwell/lumen/internal/backup"
	"github.com/lumenwell/lumen/internal/checkin"
	"github.com/lumenwell/lumen/internal/gateway"
	"github.com/lumenwell/lumen/internal/keyring"
	"github.com/lumenwell/lumen/internal/logger"
	"github.com/lumenwell/lumen/internal/models"
	"github.com/lumenwell/lumen/internal/statestore"
)

type Context struct {
	Store  statestore.Provider
	Config string
}

// Engine assembles the check-in orchestrator for the current settings. The
// remote client picks up the API token from the OS keyring when one is
// stored; a missing user id is derived from the token's claims.
func (c *Context) Engine() (*checkin.Orchestrator, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, err
	}

	token, err := keyring.GetAPIToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("OS keyring unavailable, continuing without API token", "error", err)
	}
	if settings.UserID == "" && token != "" {
		if userID, err := gateway.UserIDFromToken(token); err == nil {
			settings.UserID = userID
		}
	}

	client := gateway.New(settings, token)
	return checkin.New(c.Store, client, settings), nil
}

// Settings reads the current settings from the store.
func (c *Context) Settings() (models.Settings, error) {
	return c.Store.GetSettings()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if statestore.IsPostgres(c.Config) {
		// File backups only apply to the sqlite backend.
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
