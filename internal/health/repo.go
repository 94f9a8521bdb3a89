package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO health_measurement
				(subject_id, weight_kg, height_cm, bmi, category, measured_on)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		m.SubjectID, m.WeightKg, m.HeightCm, m.BMI, m.Category.String(), m.MeasuredOn,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("measurement.id", id))

	m.ID = id
	return &m, nil
}

// GetLatest returns the most recent measurement for a subject, i.e.
// the authoritative current weight/height/BMI state.
func (r *Repo) GetLatest(ctx context.Context, subjectID int) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.getlatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, weight_kg, height_cm, bmi, category, measured_on
			FROM health_measurement
			WHERE subject_id = $1
			ORDER BY measured_on DESC, id DESC
			LIMIT 1;`,
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, err
	}

	if len(measurements) != 1 {
		return nil, ErrMeasurementNotFound
	}

	return &measurements[0], nil
}

// History returns all measurements for a subject, newest first.
func (r *Repo) History(ctx context.Context, subjectID int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, weight_kg, height_cm, bmi, category, measured_on
			FROM health_measurement
			WHERE subject_id = $1
			ORDER BY measured_on DESC, id DESC;`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2measurements(rows)
}

func (r *Repo) rows2measurements(rows pgx.Rows) ([]Measurement, error) {
	var measurements []Measurement
	for rows.Next() {
		var id int
		var subjectID int
		var weightKg float64
		var heightCm float64
		var bmi float64
		var category string
		var measuredOn time.Time
		if err := rows.Scan(&id, &subjectID, &weightKg, &heightCm, &bmi, &category, &measuredOn); err != nil {
			return nil, err
		}

		measurements = append(measurements, Measurement{
			ID:         id,
			SubjectID:  subjectID,
			WeightKg:   weightKg,
			HeightCm:   heightCm,
			BMI:        bmi,
			Category:   BMICategory(category),
			MeasuredOn: measuredOn,
		})
	}

	if measurements == nil {
		measurements = make([]Measurement, 0)
	}

	return measurements, nil
}
