package constants

// Mood labels, in the order the original entry form presents them.
var Moods = []string{"Happy", "Meh", "Mad", "Sad", "Anxious", "Depressed"}

// Focus categories selectable on a daily check-in. MoodEntry stores an
// index into this list.
var FocusCategories = []string{"Wellness", "Work", "Achievement", "Community"}

const (
	// Sleep quality score bounds (inclusive)
	SleepQualityMin = 0.0
	SleepQualityMax = 10.0

	// Sleep hours bounds (inclusive)
	SleepHoursMin = 0
	SleepHoursMax = 12

	// Persisted state keys
	StateKeyStreak             = "streakData"
	StateKeyLastAnsweredPrefix = "lastAnsweredDate_"
)

// IsValidMood reports whether label is one of the known mood labels.
func IsValidMood(label string) bool {
	for _, m := range Moods {
		if m == label {
			return true
		}
	}
	return false
}

// SleepQualityLabel bands a 0-10 sleep quality score into a display label.
func SleepQualityLabel(score float64) string {
	switch {
	case score <= 2:
		return "Very Poor"
	case score <= 4:
		return "Poor"
	case score <= 6:
		return "Average"
	case score <= 8:
		return "Good"
	default:
		return "Very Good"
	}
}
