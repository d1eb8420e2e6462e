package settings

import (
	"fmt"

	"github.com/lumenwell/lumen/internal/cli"
	"github.com/lumenwell/lumen/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone name, or 'Local' for the system timezone."`
	RemoteURL            *string `help:"Base URL of the wellbeing sync API."`
	UserID               *string `help:"User id for questionnaire answers."`
	RequestTimeoutSec    *int    `help:"Per-request timeout for remote calls, in seconds."`
	NotificationsEnabled *bool   `help:"Enable or disable check-in reminders."`
	AllowSampleHistory   *bool   `help:"Show placeholder history when the remote fetch fails (dev only)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Remote URL:            %s\n", settings.RemoteURL)
		fmt.Printf("  User ID:               %s\n", settings.UserID)
		fmt.Printf("  Request Timeout:       %d sec\n", settings.RequestTimeoutSec)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Allow Sample History:  %v\n", settings.AllowSampleHistory)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.RemoteURL != nil {
		settings.RemoteURL = *c.RemoteURL
		updated = true
	}
	if c.UserID != nil {
		settings.UserID = *c.UserID
		updated = true
	}
	if c.RequestTimeoutSec != nil {
		if *c.RequestTimeoutSec <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		settings.RequestTimeoutSec = *c.RequestTimeoutSec
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.AllowSampleHistory != nil {
		settings.AllowSampleHistory = *c.AllowSampleHistory
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
