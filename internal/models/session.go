package models

// WorkoutSession is one committed session placed on the weekly grid.
// The id is generated at commit time and never changes. Overlapping
// sessions on the same day and slot are allowed.
type WorkoutSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Focus     string    `json:"focus"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	Duration  int       `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Notes     string    `json:"notes,omitempty"`
}

// SessionDraft is the in-progress, uncommitted session being edited.
type SessionDraft struct {
	Title     string    `json:"title"`
	Focus     string    `json:"focus"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	Duration  int       `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Notes     string    `json:"notes"`
}

// Durations lists the selectable session lengths in minutes.
var Durations = []int{30, 45, 60, 75, 90, 105}

// DefaultDraft returns a fresh draft: Monday at 06:00, 60 minutes,
// moderate intensity, empty text fields.
func DefaultDraft() SessionDraft {
	return SessionDraft{
		Day:       Days[0],
		Start:     "06:00",
		Duration:  60,
		Intensity: IntensityModerate,
	}
}
