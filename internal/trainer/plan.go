package trainer

import (
	"errors"
	"time"
)

var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrInvalidPlan    = errors.New("plan title must not be empty and type must be valid")
	ErrNotATrainer    = errors.New("subject is not a trainer")
	ErrNotAssigned    = errors.New("subject is not assigned to this trainer")
	ErrAlreadyClient  = errors.New("subject already has a trainer assigned")
	ErrTrainerIsOwner = errors.New("trainer cannot be assigned to themselves")
)

type PlanType string

const (
	PlanWorkout PlanType = "workout"
	PlanDiet    PlanType = "diet"
)

func (pt PlanType) String() string {
	return string(pt)
}

func (pt PlanType) IsValid() bool {
	switch pt {
	case PlanWorkout, PlanDiet:
		return true
	default:
		return false
	}
}

// Plan is a workout or diet plan a trainer writes for a client.
type Plan struct {
	ID          int       `json:"id"`
	TrainerID   int       `json:"trainerId"`
	SubjectID   int       `json:"subjectId"`
	Type        PlanType  `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
