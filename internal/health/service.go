package health

import (
	"context"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=health_test

type measurementsRepo interface {
	Add(ctx context.Context, m Measurement) (*Measurement, error)
	GetLatest(ctx context.Context, subjectID int) (*Measurement, error)
	History(ctx context.Context, subjectID int) ([]Measurement, error)
}

// alertNotifier gets told about every new measurement; the alert rule
// engine decides whether an alert comes out of it.
type alertNotifier interface {
	MeasurementRecorded(ctx context.Context, m Measurement) error
}

type Service struct {
	repo     measurementsRepo
	notifier alertNotifier
}

func NewService(repo measurementsRepo, notifier alertNotifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// RecordMeasurement validates and stores a new weight/height record,
// then runs it through the alert rules.
func (s *Service) RecordMeasurement(
	ctx context.Context,
	subjectID int,
	weightKg, heightCm float64,
	measuredOn time.Time,
) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.health.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	m, err := NewMeasurement(subjectID, weightKg, heightCm, measuredOn)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("add measurement: %w", err)
	}

	if err := s.notifier.MeasurementRecorded(ctx, *added); err != nil {
		return nil, fmt.Errorf("notify measurement recorded: %w", err)
	}

	return added, nil
}

func (s *Service) Latest(ctx context.Context, subjectID int) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.health.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m, err := s.repo.GetLatest(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) History(ctx context.Context, subjectID int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.health.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.repo.History(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("measurement history: %w", err)
	}
	return history, nil
}

// WeightChange is the difference between the oldest and newest
// measurement of a subject, used by trainers for longitudinal views.
type WeightChange struct {
	WeightKgChange float64 `json:"weightKgChange"`
	BMIChange      float64 `json:"bmiChange"`
}

func (s *Service) WeightChange(ctx context.Context, subjectID int) (_ *WeightChange, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.health.weightchange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	history, err := s.repo.History(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("measurement history: %w", err)
	}
	if len(history) < 2 {
		return nil, ErrMeasurementNotFound
	}

	// history is ordered newest first
	latest, oldest := history[0], history[len(history)-1]
	return &WeightChange{
		WeightKgChange: latest.WeightKg - oldest.WeightKg,
		BMIChange:      latest.BMI - oldest.BMI,
	}, nil
}
