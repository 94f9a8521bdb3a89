package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=activity_test

var ErrUnknownMetric = errors.New("unknown metric")

// Metric selects which daily value a series or aggregation is built from.
type Metric string

const (
	MetricSteps            Metric = "steps"
	MetricCaloriesBurned   Metric = "calories_burned"
	MetricCaloriesConsumed Metric = "calories_consumed"
)

func (m Metric) IsValid() bool {
	switch m {
	case MetricSteps, MetricCaloriesBurned, MetricCaloriesConsumed:
		return true
	default:
		return false
	}
}

type logsProvider interface {
	LogsInRange(ctx context.Context, subjectID int, from, to time.Time) ([]ActivityLog, error)
	WorkoutsInRange(ctx context.Context, subjectID int, from, to time.Time) ([]WorkoutEntry, error)
}

// Aggregator answers all time-windowed questions about activity logs.
// Averages are taken over logged days only, while daily series
// zero-fill the missing days, so the two deliberately disagree about
// what a day without a log means.
type Aggregator struct {
	repo logsProvider
}

func NewAggregator(repo logsProvider) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// Summary is the aggregate view over one [from, to] window.
type Summary struct {
	From                  time.Time `json:"from"`
	To                    time.Time `json:"to"`
	TotalSteps            int       `json:"totalSteps"`
	AverageSteps          float64   `json:"averageSteps"`
	TotalCaloriesBurned   int       `json:"totalCaloriesBurned"`
	TotalCaloriesConsumed int       `json:"totalCaloriesConsumed"`
	LoggedDays            int       `json:"loggedDays"`
	DaysGoalAchieved      int       `json:"daysGoalAchieved"`
	WorkoutCount          int       `json:"workoutCount"`
	TotalWorkoutDuration  int       `json:"totalWorkoutDurationMinutes"`
	TotalWorkoutCalories  int       `json:"totalWorkoutCaloriesBurned"`
}

// Summarize aggregates the subject's logs in [from, to]. The steps
// goal threshold for daysGoalAchieved falls back to DefaultStepsGoal
// when not positive.
func (a *Aggregator) Summarize(ctx context.Context, subjectID int, from, to time.Time, stepsGoal int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.activity.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if stepsGoal <= 0 {
		stepsGoal = DefaultStepsGoal
	}

	logs, err := a.repo.LogsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("logs in range: %w", err)
	}

	workouts, err := a.repo.WorkoutsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("workouts in range: %w", err)
	}

	summary := &Summary{
		From:         DayOf(from),
		To:           DayOf(to),
		LoggedDays:   len(logs),
		WorkoutCount: len(workouts),
	}
	for _, l := range logs {
		summary.TotalSteps += l.Steps
		summary.TotalCaloriesBurned += l.CaloriesBurned
		summary.TotalCaloriesConsumed += l.CaloriesConsumed
		if l.Steps >= stepsGoal {
			summary.DaysGoalAchieved++
		}
	}

	for _, workout := range workouts {
		summary.TotalWorkoutDuration += workout.DurationMinutes
		summary.TotalWorkoutCalories += workout.CaloriesBurned
	}

	if len(logs) > 0 {
		summary.AverageSteps = float64(summary.TotalSteps) / float64(len(logs))
	}

	return summary, nil
}

// TotalSteps sums the logged steps in [from, to]. The goals engine
// uses it to refresh steps goals.
func (a *Aggregator) TotalSteps(ctx context.Context, subjectID int, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.activity.totalsteps")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return 0, ErrInvalidRange
	}

	logs, err := a.repo.LogsInRange(ctx, subjectID, from, to)
	if err != nil {
		return 0, fmt.Errorf("logs in range: %w", err)
	}

	total := 0
	for _, l := range logs {
		total += l.Steps
	}
	return total, nil
}

// WorkoutsInRange passes through to storage so consumers of the
// aggregator do not need a second dependency for workout views.
func (a *Aggregator) WorkoutsInRange(ctx context.Context, subjectID int, from, to time.Time) (_ []WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.activity.workoutsinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	return a.repo.WorkoutsInRange(ctx, subjectID, from, to)
}

type DailyPoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// DailySeries returns one point per calendar day in [from, to], oldest
// first. Days without a log get a zero value so the series always has
// a fixed, gap-free length.
func (a *Aggregator) DailySeries(ctx context.Context, subjectID int, from, to time.Time, metric Metric) (_ []DailyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.activity.dailyseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", string(metric)))

	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if !metric.IsValid() {
		return nil, ErrUnknownMetric
	}

	logs, err := a.repo.LogsInRange(ctx, subjectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("logs in range: %w", err)
	}

	byDay := make(map[time.Time]ActivityLog, len(logs))
	for _, l := range logs {
		byDay[DayOf(l.Date)] = l
	}

	var series []DailyPoint
	for day := DayOf(from); !day.After(DayOf(to)); day = day.AddDate(0, 0, 1) {
		point := DailyPoint{Date: day}
		if l, ok := byDay[day]; ok {
			switch metric {
			case MetricSteps:
				point.Value = l.Steps
			case MetricCaloriesBurned:
				point.Value = l.CaloriesBurned
			case MetricCaloriesConsumed:
				point.Value = l.CaloriesConsumed
			}
		}
		series = append(series, point)
	}

	return series, nil
}
