package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/metrics"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=activity_test

type activityRepo interface {
	UpsertLog(ctx context.Context, activityLog ActivityLog) (*ActivityLog, error)
	LogsInRange(ctx context.Context, subjectID int, from, to time.Time) ([]ActivityLog, error)
	AddWorkout(ctx context.Context, workout WorkoutEntry) (*WorkoutEntry, error)
	WorkoutsInRange(ctx context.Context, subjectID int, from, to time.Time) ([]WorkoutEntry, error)
}

// stepGoalSync is told after every stored daily log so active steps
// goals can pick up the new totals.
type stepGoalSync interface {
	SyncSteps(ctx context.Context, subjectID int, now time.Time) error
}

type Service struct {
	repo     activityRepo
	goalSync stepGoalSync
	metrics  *metrics.Manager
}

func NewService(repo activityRepo, goalSync stepGoalSync, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		goalSync: goalSync,
		metrics:  metricsManager,
	}
}

// LogActivity validates and upserts a daily activity log, then kicks
// the steps goal sync for the subject.
func (s *Service) LogActivity(
	ctx context.Context,
	subjectID int,
	date time.Time,
	steps, caloriesBurned, caloriesConsumed int,
) (_ *ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.logactivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	if steps < 0 || caloriesBurned < 0 || caloriesConsumed < 0 {
		return nil, ErrInvalidActivity
	}

	stored, err := s.repo.UpsertLog(ctx, ActivityLog{
		SubjectID:        subjectID,
		Date:             date,
		Steps:            steps,
		CaloriesBurned:   caloriesBurned,
		CaloriesConsumed: caloriesConsumed,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert activity log: %w", err)
	}

	s.metrics.CounterActivityLogs.Inc()

	if err := s.goalSync.SyncSteps(ctx, subjectID, time.Now()); err != nil {
		return nil, fmt.Errorf("sync steps goals: %w", err)
	}

	return stored, nil
}

func (s *Service) LogWorkout(ctx context.Context, workout WorkoutEntry) (_ *WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.logworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", workout.SubjectID))

	if !workout.Type.IsValid() || !workout.Intensity.IsValid() {
		return nil, ErrInvalidWorkout
	}
	if workout.DurationMinutes <= 0 || workout.CaloriesBurned < 0 {
		return nil, ErrInvalidWorkout
	}

	added, err := s.repo.AddWorkout(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}

	s.metrics.CounterWorkouts.Inc()

	return added, nil
}

func (s *Service) Logs(ctx context.Context, subjectID int, from, to time.Time) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	logs, err := s.repo.LogsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("logs in range: %w", err)
	}
	return logs, nil
}

func (s *Service) Workouts(ctx context.Context, subjectID int, from, to time.Time) (_ []WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	workouts, err := s.repo.WorkoutsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("workouts in range: %w", err)
	}
	return workouts, nil
}
