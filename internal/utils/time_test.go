package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone Asia/Ulaanbaatar",
			timezone: "Asia/Ulaanbaatar",
			wantErr:  false,
		},
		{
			name:     "valid timezone America/New_York",
			timezone: "America/New_York",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestDateString(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 45, 12, 0, time.UTC)
	if got := DateString(ts); got != "2025-03-09" {
		t.Errorf("DateString() = %q, want 2025-03-09", got)
	}
}

func TestYesterdayString(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  string
	}{
		{
			name:  "mid month",
			today: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
			want:  "2025-06-14",
		},
		{
			name:  "first of month",
			today: time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC),
			want:  "2025-02-28",
		},
		{
			name:  "first of year",
			today: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			want:  "2024-12-31",
		},
		{
			name:  "leap day boundary",
			today: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			want:  "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YesterdayString(tt.today); got != tt.want {
				t.Errorf("YesterdayString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDateInLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	parsed, err := ParseDateInLocation("2025-08-28", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() error = %v", err)
	}
	if parsed.Hour() != 0 || parsed.Location() != loc {
		t.Errorf("ParseDateInLocation() = %v, want midnight in %v", parsed, loc)
	}

	if _, err := ParseDateInLocation("28/08/2025", loc); err == nil {
		t.Error("ParseDateInLocation() accepted invalid format")
	}
}

func TestValidateDateFormat(t *testing.T) {
	if !ValidateDateFormat("2025-01-31") {
		t.Error("ValidateDateFormat() rejected valid date")
	}
	if ValidateDateFormat("not-a-date") {
		t.Error("ValidateDateFormat() accepted invalid date")
	}
}
