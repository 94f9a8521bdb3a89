package activity

import (
	"errors"
	"time"
)

var (
	ErrInvalidActivity    = errors.New("activity values must not be negative")
	ErrInvalidWorkout     = errors.New("workout duration must be positive")
	ErrInvalidRange       = errors.New("range end must not precede range start")
	ErrActivityLogMissing = errors.New("activity log not found")
)

// DefaultStepsGoal is the daily steps threshold used when a caller
// does not provide one.
const DefaultStepsGoal = 10000

// ActivityLog is one day of activity for a subject. There is at most
// one log per subject per day, a second write for the same day
// replaces the values.
type ActivityLog struct {
	ID               int       `json:"id"`
	SubjectID        int       `json:"subjectId"`
	Date             time.Time `json:"date"`
	Steps            int       `json:"steps"`
	CaloriesBurned   int       `json:"caloriesBurned"`
	CaloriesConsumed int       `json:"caloriesConsumed"`
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func (i Intensity) String() string {
	return string(i)
}

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	default:
		return false
	}
}

type WorkoutType string

const (
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutStrength    WorkoutType = "strength"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutSports      WorkoutType = "sports"
	WorkoutOther       WorkoutType = "other"
)

func (wt WorkoutType) String() string {
	return string(wt)
}

func (wt WorkoutType) IsValid() bool {
	switch wt {
	case WorkoutCardio, WorkoutStrength, WorkoutFlexibility, WorkoutSports, WorkoutOther:
		return true
	default:
		return false
	}
}

type WorkoutEntry struct {
	ID              int         `json:"id"`
	SubjectID       int         `json:"subjectId"`
	Date            time.Time   `json:"date"`
	Type            WorkoutType `json:"type"`
	DurationMinutes int         `json:"durationMinutes"`
	Intensity       Intensity   `json:"intensity"`
	CaloriesBurned  int         `json:"caloriesBurned"`
	Notes           string      `json:"notes,omitempty"`
}

// DayOf truncates a timestamp to its UTC calendar day. All activity
// dates are stored this way so the one-log-per-day upsert works.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
