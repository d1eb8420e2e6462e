package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`                // IANA timezone name, or "Local" for the system timezone
	RemoteURL            string `json:"remote_url"`              // base URL of the wellbeing sync API
	UserID               string `json:"user_id"`                 // remote user identity for questionnaire answers
	RequestTimeoutSec    int    `json:"request_timeout_sec"`     // per-request timeout for remote calls
	NotificationsEnabled bool   `json:"notifications_enabled"`   // whether check-in reminders are enabled
	AllowSampleHistory   bool   `json:"allow_sample_history"`    // dev-only: show placeholder history when the remote fetch fails
}
