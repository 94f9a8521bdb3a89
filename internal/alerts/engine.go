package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/goals"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/health"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/metrics"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=alerts_test

type alertsRepo interface {
	Add(ctx context.Context, alert Alert) (*Alert, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Engine is the rule engine behind every alert in the system. Domain
// services report events to it and it decides which alerts come out,
// so alert wording and severity live in exactly one place.
type Engine struct {
	repo    alertsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewEngine(repo alertsRepo, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// MeasurementRecorded runs the BMI rules against a freshly stored
// measurement. A normal category produces no alert; obese is critical,
// the other two are warnings.
func (e *Engine) MeasurementRecorded(ctx context.Context, m health.Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.measurementrecorded")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bmi_category", m.Category.String()))

	e.metrics.CounterMeasurements.Inc()

	if !m.Category.NeedsAlert() {
		return nil
	}

	alertType, ok := bmiAlertType(m.Category)
	if !ok {
		return fmt.Errorf("no alert type for bmi category %q", m.Category)
	}

	severity := SeverityWarning
	if m.Category == health.CategoryObese {
		severity = SeverityCritical
	}

	message := fmt.Sprintf(
		"Your BMI is %.1f (%s). %s",
		m.BMI, m.Category.DisplayName(), m.Category.Advice(),
	)

	return e.emit(ctx, m.SubjectID, alertType, severity, message)
}

// GoalCompleted emits the congratulation alert for a goal that just
// transitioned to completed.
func (e *Engine) GoalCompleted(ctx context.Context, goal goals.Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.goalcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goal.ID))

	e.metrics.CounterGoalsCompleted.Inc()

	message := fmt.Sprintf(
		"Congratulations! You reached your %s goal of %.0f.",
		goal.Type.String(), goal.TargetValue,
	)

	return e.emit(ctx, goal.SubjectID, TypeGoalCompleted, SeverityInfo, message)
}

func (e *Engine) TrainerAssigned(ctx context.Context, subjectID int, trainerName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.trainerassigned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	message := fmt.Sprintf("Trainer %s is now assigned to you.", trainerName)
	return e.emit(ctx, subjectID, TypeTrainerAssigned, SeverityInfo, message)
}

func (e *Engine) PlanCreated(ctx context.Context, subjectID int, planTitle string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.plancreated")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	message := fmt.Sprintf("Your trainer created a new plan for you: %s.", planTitle)
	return e.emit(ctx, subjectID, TypeNewPlan, SeverityInfo, message)
}

func (e *Engine) GoalAssigned(ctx context.Context, goal goals.Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.goalassigned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	message := fmt.Sprintf(
		"Your trainer set a new %s goal for you: %.0f by %s.",
		goal.Type.String(), goal.TargetValue, goal.EndDate.Format("2006-01-02"),
	)
	return e.emit(ctx, goal.SubjectID, TypeNewGoal, SeverityInfo, message)
}

func (e *Engine) emit(ctx context.Context, subjectID int, alertType AlertType, severity Severity, message string) error {
	alert := Alert{
		SubjectID: subjectID,
		Type:      alertType,
		Severity:  severity,
		Message:   message,
		Read:      false,
		CreatedAt: e.now(),
	}

	if _, err := e.repo.Add(ctx, alert); err != nil {
		return fmt.Errorf("add alert: %w", err)
	}

	e.metrics.CounterAlertsEmitted.
		WithLabelValues(alertType.String(), severity.String()).
		Inc()

	return nil
}

// CleanupOldAlerts removes read alerts older than the retention
// period. Unread alerts survive regardless of age. Running it is a
// caller concern, there is no background sweep.
func (e *Engine) CleanupOldAlerts(ctx context.Context, retentionDays int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "alerts.engine.cleanup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("retention_days", retentionDays))

	cutoff := e.now().AddDate(0, 0, -retentionDays)
	deleted, err := e.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read alerts: %w", err)
	}

	if deleted > 0 {
		log.Debugf("alerts retention cleanup removed %d alerts", deleted)
	}
	return deleted, nil
}

func bmiAlertType(category health.BMICategory) (AlertType, bool) {
	switch category {
	case health.CategoryUnderweight:
		return TypeBMIUnderweight, true
	case health.CategoryOverweight:
		return TypeBMIOverweight, true
	case health.CategoryObese:
		return TypeBMIObese, true
	default:
		return "", false
	}
}
