package gate

import (
	"testing"
	"time"
)

func TestCanCheckIn(t *testing.T) {
	today := time.Date(2025, 8, 28, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastDate string
		want     bool
	}{
		{
			name:     "never checked in",
			lastDate: "",
			want:     true,
		},
		{
			name:     "checked in yesterday",
			lastDate: "2025-08-27",
			want:     true,
		},
		{
			name:     "already checked in today",
			lastDate: "2025-08-28",
			want:     false,
		},
		{
			name:     "checked in long ago",
			lastDate: "2024-01-01",
			want:     true,
		},
		{
			name:     "last date in future due to clock skew",
			lastDate: "2025-08-29",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCheckIn(today, tt.lastDate); got != tt.want {
				t.Errorf("CanCheckIn(%q) = %v, want %v", tt.lastDate, got, tt.want)
			}
		})
	}
}

func TestCanCheckInIgnoresTimeOfDay(t *testing.T) {
	// Two instants on the same calendar day must agree.
	morning := time.Date(2025, 8, 28, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 8, 28, 23, 59, 59, 0, time.UTC)

	if CanCheckIn(morning, "2025-08-28") != CanCheckIn(night, "2025-08-28") {
		t.Error("gate result depends on time of day")
	}
}
