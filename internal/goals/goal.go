package goals

import (
	"errors"
	"time"
)

var (
	ErrInvalidGoal  = errors.New("goal target must be positive and end date must not precede start date")
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalType can be one of:
//   - steps
//   - calories_burn
//   - calories_intake
//   - workout_duration
//   - weight
type GoalType string

const (
	GoalTypeSteps           GoalType = "steps"
	GoalTypeCaloriesBurn    GoalType = "calories_burn"
	GoalTypeCaloriesIntake  GoalType = "calories_intake"
	GoalTypeWorkoutDuration GoalType = "workout_duration"
	GoalTypeWeight          GoalType = "weight"
)

func (gt GoalType) String() string {
	return string(gt)
}

func (gt GoalType) IsValid() bool {
	switch gt {
	case GoalTypeSteps,
		GoalTypeCaloriesBurn,
		GoalTypeCaloriesIntake,
		GoalTypeWorkoutDuration,
		GoalTypeWeight:
		return true
	default:
		return false
	}
}

type GoalStatus string

const (
	StatusInProgress GoalStatus = "in_progress"
	StatusCompleted  GoalStatus = "completed"
	StatusFailed     GoalStatus = "failed"
)

func (gs GoalStatus) String() string {
	return string(gs)
}

type Goal struct {
	ID           int        `json:"id"`
	SubjectID    int        `json:"subjectId"`
	Type         GoalType   `json:"type"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	Status       GoalStatus `json:"status"`
}

func New(subjectID int, goalType GoalType, targetValue float64, startDate, endDate time.Time) (Goal, error) {
	if !goalType.IsValid() {
		return Goal{}, ErrInvalidGoal
	}
	if targetValue <= 0 || endDate.Before(startDate) {
		return Goal{}, ErrInvalidGoal
	}

	return Goal{
		SubjectID:    subjectID,
		Type:         goalType,
		TargetValue:  targetValue,
		CurrentValue: 0,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       StatusInProgress,
	}, nil
}

// ApplyProgress replaces the current value with the new measured total
// (not a delta, so a lower value than stored still wins) and reports
// whether this update completed the goal. The in-progress to completed
// transition happens at most once and never reverts.
func (g *Goal) ApplyProgress(newCurrentValue float64) (completedNow bool) {
	g.CurrentValue = newCurrentValue

	if g.Status == StatusInProgress && newCurrentValue >= g.TargetValue {
		g.Status = StatusCompleted
		return true
	}
	return false
}

// ProgressPercentage is capped at 100. The zero target guard should be
// unreachable given creation validation, but the engine must never
// divide by zero.
func (g Goal) ProgressPercentage() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue * 100
	if p > 100 {
		return 100
	}
	return p
}

// EffectiveStatus derives the status at read time: an in-progress goal
// past its end date is reported as failed without being persisted, so
// no scheduled sweep is needed.
func (g Goal) EffectiveStatus(now time.Time) GoalStatus {
	if g.Status == StatusInProgress && now.After(g.EndDate) {
		return StatusFailed
	}
	return g.Status
}
