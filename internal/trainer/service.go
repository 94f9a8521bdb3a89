package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/activity"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/goals"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/subjects"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainer_test

type subjectsRepo interface {
	Get(ctx context.Context, id int) (*subjects.Subject, error)
	ClientsOfTrainer(ctx context.Context, trainerID int) ([]subjects.Subject, error)
	SetTrainer(ctx context.Context, subjectID int, trainerID *int) error
}

type plansRepo interface {
	AddPlan(ctx context.Context, plan Plan) (*Plan, error)
	PlansForSubject(ctx context.Context, subjectID int) ([]Plan, error)
	DeletePlan(ctx context.Context, planID int) error
}

// trainerNotifier is the alerts side of trainer actions. Every call
// ends up as an info alert for the affected client.
type trainerNotifier interface {
	TrainerAssigned(ctx context.Context, subjectID int, trainerName string) error
	PlanCreated(ctx context.Context, subjectID int, planTitle string) error
	GoalAssigned(ctx context.Context, goal goals.Goal) error
}

type goalCreator interface {
	Create(ctx context.Context, subjectID int, goalType goals.GoalType, targetValue float64, startDate, endDate time.Time) (*goals.Goal, error)
}

type clientAggregator interface {
	Summarize(ctx context.Context, subjectID int, from, to time.Time, stepsGoal int) (*activity.Summary, error)
	DailySeries(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) ([]activity.DailyPoint, error)
	WorkoutsInRange(ctx context.Context, subjectID int, from, to time.Time) ([]activity.WorkoutEntry, error)
}

type Service struct {
	subjects   subjectsRepo
	plans      plansRepo
	notifier   trainerNotifier
	goals      goalCreator
	aggregator clientAggregator
}

func NewService(
	subjectsRepo subjectsRepo,
	plansRepo plansRepo,
	notifier trainerNotifier,
	goalCreator goalCreator,
	aggregator clientAggregator,
) *Service {
	return &Service{
		subjects:   subjectsRepo,
		plans:      plansRepo,
		notifier:   notifier,
		goals:      goalCreator,
		aggregator: aggregator,
	}
}

// AssignClient puts a subject under a trainer and tells the subject
// about it through an alert.
func (s *Service) AssignClient(ctx context.Context, trainerID, subjectID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.assignclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	if trainerID == subjectID {
		return ErrTrainerIsOwner
	}

	trainer, err := s.subjects.Get(ctx, trainerID)
	if err != nil {
		return fmt.Errorf("get trainer: %w", err)
	}
	if trainer.Role != subjects.RoleTrainer {
		return ErrNotATrainer
	}

	subject, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("get subject: %w", err)
	}
	if subject.TrainerID != nil {
		return ErrAlreadyClient
	}

	if err := s.subjects.SetTrainer(ctx, subjectID, &trainerID); err != nil {
		return fmt.Errorf("set trainer: %w", err)
	}

	if err := s.notifier.TrainerAssigned(ctx, subjectID, trainer.Name); err != nil {
		return fmt.Errorf("notify trainer assigned: %w", err)
	}

	return nil
}

func (s *Service) RemoveClient(ctx context.Context, trainerID, subjectID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.removeclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	subject, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("get subject: %w", err)
	}
	if subject.TrainerID == nil || *subject.TrainerID != trainerID {
		return ErrNotAssigned
	}

	if err := s.subjects.SetTrainer(ctx, subjectID, nil); err != nil {
		return fmt.Errorf("clear trainer: %w", err)
	}

	return nil
}

func (s *Service) Clients(ctx context.Context, trainerID int) (_ []subjects.Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.clients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	clients, err := s.subjects.ClientsOfTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("clients of trainer: %w", err)
	}
	return clients, nil
}

// CreatePlan stores a plan for a client and alerts the client.
func (s *Service) CreatePlan(ctx context.Context, trainerID, subjectID int, planType PlanType, title, description string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.createplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	if title == "" || !planType.IsValid() {
		return nil, ErrInvalidPlan
	}

	if err := s.checkAssignment(ctx, trainerID, subjectID); err != nil {
		return nil, err
	}

	plan, err := s.plans.AddPlan(ctx, Plan{
		TrainerID:   trainerID,
		SubjectID:   subjectID,
		Type:        planType,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add plan: %w", err)
	}

	if err := s.notifier.PlanCreated(ctx, subjectID, plan.Title); err != nil {
		return nil, fmt.Errorf("notify plan created: %w", err)
	}

	return plan, nil
}

func (s *Service) PlansForClient(ctx context.Context, subjectID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.plansforclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plans, err := s.plans.PlansForSubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("plans for subject: %w", err)
	}
	return plans, nil
}

func (s *Service) DeletePlan(ctx context.Context, planID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.deleteplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.plans.DeletePlan(ctx, planID)
}

// CreateGoalForClient makes a goal on behalf of a client and alerts
// the client that a new goal was set for them.
func (s *Service) CreateGoalForClient(
	ctx context.Context,
	trainerID, subjectID int,
	goalType goals.GoalType,
	targetValue float64,
	startDate, endDate time.Time,
) (_ *goals.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.creategoalforclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	if err := s.checkAssignment(ctx, trainerID, subjectID); err != nil {
		return nil, err
	}

	goal, err := s.goals.Create(ctx, subjectID, goalType, targetValue, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.GoalAssigned(ctx, *goal); err != nil {
		return nil, fmt.Errorf("notify goal assigned: %w", err)
	}

	return goal, nil
}

// StepsProgress is the trainer's steps view of one client window.
type StepsProgress struct {
	Summary  activity.Summary    `json:"summary"`
	BestDay  activity.DailyPoint `json:"bestDay"`
	WorstDay activity.DailyPoint `json:"worstDay"`
}

func (s *Service) ClientStepsProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (_ *StepsProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.clientstepsprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.checkAssignment(ctx, trainerID, subjectID); err != nil {
		return nil, err
	}

	summary, err := s.aggregator.Summarize(ctx, subjectID, from, to, 0)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	series, err := s.aggregator.DailySeries(ctx, subjectID, from, to, activity.MetricSteps)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}

	progress := &StepsProgress{Summary: *summary}
	if len(series) > 0 {
		best, worst := series[0], series[0]
		for _, point := range series[1:] {
			if point.Value > best.Value {
				best = point
			}
			if point.Value < worst.Value {
				worst = point
			}
		}
		progress.BestDay, progress.WorstDay = best, worst
	}

	return progress, nil
}

// CaloriesProgress adds the net calories balance to the window summary.
type CaloriesProgress struct {
	Summary     activity.Summary `json:"summary"`
	NetCalories int              `json:"netCalories"`
}

func (s *Service) ClientCaloriesProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (_ *CaloriesProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.clientcaloriesprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.checkAssignment(ctx, trainerID, subjectID); err != nil {
		return nil, err
	}

	summary, err := s.aggregator.Summarize(ctx, subjectID, from, to, 0)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	return &CaloriesProgress{
		Summary:     *summary,
		NetCalories: summary.TotalCaloriesConsumed - summary.TotalCaloriesBurned - summary.TotalWorkoutCalories,
	}, nil
}

// WorkoutProgress breaks a client's workouts down per workout type.
type WorkoutProgress struct {
	WorkoutCount    int                          `json:"workoutCount"`
	TotalDuration   int                          `json:"totalDurationMinutes"`
	TotalCalories   int                          `json:"totalCaloriesBurned"`
	PerTypeCount    map[activity.WorkoutType]int `json:"perTypeCount"`
	PerTypeDuration map[activity.WorkoutType]int `json:"perTypeDurationMinutes"`
	Workouts        []activity.WorkoutEntry      `json:"workouts"`
}

func (s *Service) ClientWorkoutProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (_ *WorkoutProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainer.clientworkoutprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.checkAssignment(ctx, trainerID, subjectID); err != nil {
		return nil, err
	}

	workouts, err := s.aggregator.WorkoutsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("workouts in range: %w", err)
	}

	progress := &WorkoutProgress{
		WorkoutCount:    len(workouts),
		PerTypeCount:    make(map[activity.WorkoutType]int),
		PerTypeDuration: make(map[activity.WorkoutType]int),
		Workouts:        workouts,
	}
	for _, workout := range workouts {
		progress.TotalDuration += workout.DurationMinutes
		progress.TotalCalories += workout.CaloriesBurned
		progress.PerTypeCount[workout.Type]++
		progress.PerTypeDuration[workout.Type] += workout.DurationMinutes
	}

	return progress, nil
}

func (s *Service) checkAssignment(ctx context.Context, trainerID, subjectID int) error {
	subject, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("get subject: %w", err)
	}
	if subject.TrainerID == nil || *subject.TrainerID != trainerID {
		return ErrNotAssigned
	}
	return nil
}
