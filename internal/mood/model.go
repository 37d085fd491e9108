package mood

import "time"

// Mood is the small fixed scale roommates log against
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodRough Mood = "rough"
)

// Valid reports whether the value is one of the known moods
func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodLow, MoodRough:
		return true
	}
	return false
}

// Entry represents one logged mood
type Entry struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	Username    string    `json:"username"`
	Mood        Mood      `json:"mood"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LogRequest represents the request to log a mood
type LogRequest struct {
	HouseholdID int64  `json:"household_id"`
	Mood        Mood   `json:"mood"`
	Note        string `json:"note,omitempty"`
}
