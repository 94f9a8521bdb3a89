package alerts

import (
	"errors"
	"time"
)

var ErrAlertNotFound = errors.New("alert not found")

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// AlertType identifies which rule produced an alert.
type AlertType string

const (
	TypeBMIUnderweight  AlertType = "BMI_UNDERWEIGHT"
	TypeBMIOverweight   AlertType = "BMI_OVERWEIGHT"
	TypeBMIObese        AlertType = "BMI_OBESE"
	TypeGoalCompleted   AlertType = "GOAL_COMPLETED"
	TypeTrainerAssigned AlertType = "TRAINER_ASSIGNED"
	TypeNewPlan         AlertType = "NEW_PLAN"
	TypeNewGoal         AlertType = "NEW_GOAL"
)

func (at AlertType) String() string {
	return string(at)
}

// Alert is write-once: after creation only the read flag changes, until
// retention cleanup removes it.
type Alert struct {
	ID        int       `json:"id"`
	SubjectID int       `json:"subjectId"`
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
