package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, id int) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	ListActive(ctx context.Context, subjectID int) ([]Goal, error)
	ListAll(ctx context.Context, subjectID int) ([]Goal, error)
}

// completionNotifier gets told when a goal transitions to completed,
// exactly once per goal.
type completionNotifier interface {
	GoalCompleted(ctx context.Context, goal Goal) error
}

// stepsTotaler provides the measured steps total used to refresh
// steps goals after a new daily log lands.
type stepsTotaler interface {
	TotalSteps(ctx context.Context, subjectID int, start, end time.Time) (int, error)
}

type Service struct {
	repo     goalsRepo
	notifier completionNotifier
	steps    stepsTotaler
}

func NewService(repo goalsRepo, notifier completionNotifier, steps stepsTotaler) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		steps:    steps,
	}
}

func (s *Service) Create(
	ctx context.Context,
	subjectID int,
	goalType GoalType,
	targetValue float64,
	startDate, endDate time.Time,
) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))
	span.SetAttributes(attribute.String("goal_type", goalType.String()))

	goal, err := New(subjectID, goalType, targetValue, startDate, endDate)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("add goal: %w", err)
	}
	return added, nil
}

// UpdateProgress stores the new measured total for a goal. When the
// update completes the goal, the completion notifier is told about it.
func (s *Service) UpdateProgress(ctx context.Context, goalID int, newCurrentValue float64) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal_id", goalID))

	goal, err := s.repo.Get(ctx, goalID)
	if err != nil {
		return nil, err
	}

	completedNow := goal.ApplyProgress(newCurrentValue)
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	if completedNow {
		if err := s.notifier.GoalCompleted(ctx, *goal); err != nil {
			return nil, fmt.Errorf("notify goal completed: %w", err)
		}
	}

	return goal, nil
}

// SyncSteps refreshes all active steps goals of a subject against the
// logged steps totals. Called after a daily steps log is upserted.
func (s *Service) SyncSteps(ctx context.Context, subjectID int, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.syncsteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	activeGoals, err := s.repo.ListActive(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("list active goals: %w", err)
	}

	for i := range activeGoals {
		goal := &activeGoals[i]
		if goal.Type != GoalTypeSteps {
			continue
		}

		totalSteps, err := s.steps.TotalSteps(ctx, subjectID, goal.StartDate, now)
		if err != nil {
			return fmt.Errorf("total steps for goal %d: %w", goal.ID, err)
		}

		completedNow := goal.ApplyProgress(float64(totalSteps))
		if err := s.repo.Update(ctx, goal); err != nil {
			return fmt.Errorf("update goal %d: %w", goal.ID, err)
		}

		if completedNow {
			if err := s.notifier.GoalCompleted(ctx, *goal); err != nil {
				return fmt.Errorf("notify goal completed: %w", err)
			}
		}
	}

	return nil
}

type GoalWithProgress struct {
	Goal
	ProgressPercentage float64    `json:"progressPercentage"`
	EffectiveStatus    GoalStatus `json:"effectiveStatus"`
}

// ActiveWithProgress returns the subject's in-progress goals together
// with their progress percentage and read-time derived status.
func (s *Service) ActiveWithProgress(ctx context.Context, subjectID int, now time.Time) (_ []GoalWithProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.activewithprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activeGoals, err := s.repo.ListActive(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list active goals: %w", err)
	}

	withProgress := make([]GoalWithProgress, 0, len(activeGoals))
	for _, goal := range activeGoals {
		withProgress = append(withProgress, GoalWithProgress{
			Goal:               goal,
			ProgressPercentage: goal.ProgressPercentage(),
			EffectiveStatus:    goal.EffectiveStatus(now),
		})
	}
	return withProgress, nil
}

func (s *Service) ListAll(ctx context.Context, subjectID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goals, err := s.repo.ListAll(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}
