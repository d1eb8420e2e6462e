package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName                  = "lumen"
	DefaultKeyringUser       = "database-connection"
	KeyringTokenUser         = "api-token"
	DefaultConfigPath        = "~/.config/lumen/lumen.db"
	Version                  = "v0.3.0"
	DefaultRemoteURL         = "http://localhost:5000"
	DefaultRequestTimeoutSec = 10

	// DateFormat is the standard calendar-date format used throughout the
	// application (YYYY-MM-DD). All gating and streak arithmetic compares
	// dates in this format.
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lumen-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "lumen-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.lumenwell.lumen"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateCheckin
	StateQuestionnaire
	StateHistory
	StateCompleted
)
