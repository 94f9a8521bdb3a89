package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/activity"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/goals"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/health"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/subjects"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

// attention thresholds for the trainer dashboard
const (
	attentionWeeklySteps    = 35000
	attentionWeeklyWorkouts = 2
)

const cacheSizeBytes = 10 * 1024 * 1024

type statsAggregator interface {
	Summarize(ctx context.Context, subjectID int, from, to time.Time, stepsGoal int) (*activity.Summary, error)
	DailySeries(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) ([]activity.DailyPoint, error)
}

type latestMeasurer interface {
	Latest(ctx context.Context, subjectID int) (*health.Measurement, error)
}

type goalsLister interface {
	ActiveWithProgress(ctx context.Context, subjectID int, now time.Time) ([]goals.GoalWithProgress, error)
}

type alertsCounter interface {
	UnreadCount(ctx context.Context, subjectID int) (int, error)
}

type clientsLister interface {
	ClientsOfTrainer(ctx context.Context, trainerID int) ([]subjects.Subject, error)
}

// Service composes the engines into dashboard payloads. The field
// names in the payloads are a contract for any UI on top, keep them
// stable. Everything is pure recomputation, so results are briefly
// cached.
type Service struct {
	aggregator statsAggregator
	health     latestMeasurer
	goals      goalsLister
	alerts     alertsCounter
	clients    clientsLister

	cache    *freecache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(
	aggregator statsAggregator,
	healthService latestMeasurer,
	goalsService goalsLister,
	alertsProvider alertsCounter,
	clients clientsLister,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		aggregator: aggregator,
		health:     healthService,
		goals:      goalsService,
		alerts:     alertsProvider,
		clients:    clients,
		cache:      freecache.NewCache(cacheSizeBytes),
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

// IndividualDashboard returns the dashboard payload for a subject as
// marshaled JSON, served from cache when fresh.
func (s *Service) IndividualDashboard(ctx context.Context, subjectID int) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.individual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	cacheKey := []byte(fmt.Sprintf("dashboard||individual||%d", subjectID))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	payload, err := s.buildIndividual(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard: %w", err)
	}

	if err := s.cache.Set(cacheKey, payloadJson, int(s.cacheTTL.Seconds())); err != nil {
		log.Warnf("failed to cache dashboard for subject %d: %s", subjectID, err)
	}

	return payloadJson, nil
}

func (s *Service) buildIndividual(ctx context.Context, subjectID int) (map[string]any, error) {
	now := s.now()
	today := activity.DayOf(now)
	weekStart := today.AddDate(0, 0, -6)
	monthStart := today.AddDate(0, 0, -29)

	todaySummary, err := s.aggregator.Summarize(ctx, subjectID, today, today, 0)
	if err != nil {
		return nil, fmt.Errorf("today summary: %w", err)
	}

	weekSummary, err := s.aggregator.Summarize(ctx, subjectID, weekStart, today, 0)
	if err != nil {
		return nil, fmt.Errorf("week summary: %w", err)
	}

	monthSummary, err := s.aggregator.Summarize(ctx, subjectID, monthStart, today, 0)
	if err != nil {
		return nil, fmt.Errorf("month summary: %w", err)
	}

	weeklyChart, err := s.aggregator.DailySeries(ctx, subjectID, weekStart, today, activity.MetricSteps)
	if err != nil {
		return nil, fmt.Errorf("weekly steps chart: %w", err)
	}

	activeGoals, err := s.goals.ActiveWithProgress(ctx, subjectID, now)
	if err != nil {
		return nil, fmt.Errorf("active goals: %w", err)
	}

	unreadAlerts, err := s.alerts.UnreadCount(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("unread alert count: %w", err)
	}

	// the field names below are a stable contract for UI consumers
	payload := map[string]any{
		"todaySteps":              todaySummary.TotalSteps,
		"todayCaloriesConsumed":   todaySummary.TotalCaloriesConsumed,
		"todayCaloriesBurned":     todaySummary.TotalCaloriesBurned,
		"todayWorkoutDuration":    todaySummary.TotalWorkoutDuration,
		"todayWorkoutCount":       todaySummary.WorkoutCount,
		"weeklyTotalSteps":        weekSummary.TotalSteps,
		"weeklyAverageSteps":      weekSummary.AverageSteps,
		"weeklyWorkoutCount":      weekSummary.WorkoutCount,
		"weeklyDaysGoalAchieved":  weekSummary.DaysGoalAchieved,
		"monthlyTotalSteps":       monthSummary.TotalSteps,
		"monthlyAverageSteps":     monthSummary.AverageSteps,
		"monthlyWorkoutCount":     monthSummary.WorkoutCount,
		"activeGoalsWithProgress": activeGoals,
		"unreadAlertCount":        unreadAlerts,
		"weeklyStepsChart":        weeklyChart,
	}

	latest, err := s.health.Latest(ctx, subjectID)
	switch {
	case err == nil:
		payload["currentBMI"] = latest.BMI
		payload["bmiCategory"] = latest.Category.DisplayName()
	case errors.Is(err, health.ErrMeasurementNotFound):
		payload["currentBMI"] = nil
		payload["bmiCategory"] = nil
	default:
		return nil, fmt.Errorf("latest measurement: %w", err)
	}

	return payload, nil
}

// ClientOverview is the trainer dashboard row for one client.
type ClientOverview struct {
	SubjectID      int     `json:"subjectId"`
	Name           string  `json:"name"`
	WeeklySteps    int     `json:"weeklySteps"`
	WeeklyAverage  float64 `json:"weeklyAverageSteps"`
	WeeklyWorkouts int     `json:"weeklyWorkouts"`
	BMICategory    string  `json:"bmiCategory,omitempty"`
	NeedsAttention bool    `json:"needsAttention"`
}

type TrainerDashboard struct {
	Clients                 []ClientOverview `json:"clients"`
	BMICategoryTally        map[string]int   `json:"bmiCategoryTally"`
	ClientsNeedingAttention []int            `json:"clientsNeedingAttention"`
}

// TrainerOverview builds the trainer dashboard. A client needs
// attention on low weekly steps, too few workouts, or a BMI category
// other than normal.
func (s *Service) TrainerOverview(ctx context.Context, trainerID int) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.trainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))

	cacheKey := []byte(fmt.Sprintf("dashboard||trainer||%d", trainerID))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	clients, err := s.clients.ClientsOfTrainer(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("clients of trainer: %w", err)
	}

	today := activity.DayOf(s.now())
	weekStart := today.AddDate(0, 0, -6)

	overview := TrainerDashboard{
		Clients:                 make([]ClientOverview, 0, len(clients)),
		BMICategoryTally:        make(map[string]int),
		ClientsNeedingAttention: make([]int, 0),
	}

	for _, client := range clients {
		weekSummary, err := s.aggregator.Summarize(ctx, client.ID, weekStart, today, 0)
		if err != nil {
			return nil, fmt.Errorf("week summary for client %d: %w", client.ID, err)
		}

		row := ClientOverview{
			SubjectID:      client.ID,
			Name:           client.Name,
			WeeklySteps:    weekSummary.TotalSteps,
			WeeklyAverage:  weekSummary.AverageSteps,
			WeeklyWorkouts: weekSummary.WorkoutCount,
		}

		nonNormalBMI := false
		latest, err := s.health.Latest(ctx, client.ID)
		switch {
		case err == nil:
			row.BMICategory = latest.Category.DisplayName()
			overview.BMICategoryTally[latest.Category.String()]++
			nonNormalBMI = latest.Category != health.CategoryNormal
		case errors.Is(err, health.ErrMeasurementNotFound):
			// no measurement yet, leave the category out
		default:
			return nil, fmt.Errorf("latest measurement for client %d: %w", client.ID, err)
		}

		row.NeedsAttention = row.WeeklySteps < attentionWeeklySteps ||
			row.WeeklyWorkouts < attentionWeeklyWorkouts ||
			nonNormalBMI
		if row.NeedsAttention {
			overview.ClientsNeedingAttention = append(overview.ClientsNeedingAttention, client.ID)
		}

		overview.Clients = append(overview.Clients, row)
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		return nil, fmt.Errorf("marshal trainer dashboard: %w", err)
	}

	if err := s.cache.Set(cacheKey, overviewJson, int(s.cacheTTL.Seconds())); err != nil {
		log.Warnf("failed to cache trainer dashboard %d: %s", trainerID, err)
	}

	return overviewJson, nil
}
