package subjects

import (
	"errors"
	"time"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidSubject  = errors.New("subject username and name must not be empty")
	ErrUsernameTaken   = errors.New("username already taken")
)

type Role string

const (
	RoleIndividual Role = "individual"
	RoleTrainer    Role = "trainer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleIndividual, RoleTrainer:
		return true
	default:
		return false
	}
}

// Subject is a tracked person, either an individual or a trainer.
// TrainerID is set on individuals that have a trainer assigned.
type Subject struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	TrainerID    *int      `json:"trainerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func New(username, passwordHash, name string, role Role) (Subject, error) {
	if username == "" || name == "" {
		return Subject{}, ErrInvalidSubject
	}
	if !role.IsValid() {
		return Subject{}, ErrInvalidSubject
	}

	return Subject{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}
