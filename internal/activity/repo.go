package activity

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertLog inserts a daily activity log or replaces the values of an
// existing log for the same subject and day.
func (r *Repo) UpsertLog(ctx context.Context, activityLog ActivityLog) (_ *ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.upsertlog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", activityLog.SubjectID))

	activityLog.Date = DayOf(activityLog.Date)

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO activity_log
				(subject_id, date, steps, calories_burned, calories_consumed)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (subject_id, date) DO UPDATE SET
				steps = EXCLUDED.steps,
				calories_burned = EXCLUDED.calories_burned,
				calories_consumed = EXCLUDED.calories_consumed
			RETURNING id;`,
		activityLog.SubjectID, activityLog.Date, activityLog.Steps,
		activityLog.CaloriesBurned, activityLog.CaloriesConsumed,
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

	activityLog.ID = id
	return &activityLog, nil
}

// LogsInRange returns the subject's daily logs with date in [from, to],
// oldest first. Days without a log are simply absent.
func (r *Repo) LogsInRange(ctx context.Context, subjectID int, from, to time.Time) (_ []ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.logsinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, date, steps, calories_burned, calories_consumed
			FROM activity_log
			WHERE subject_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date;`,
		subjectID, DayOf(from), DayOf(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var logs []ActivityLog
	for rows.Next() {
		var l ActivityLog
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.Date, &l.Steps, &l.CaloriesBurned, &l.CaloriesConsumed); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	if logs == nil {
		logs = make([]ActivityLog, 0)
	}

	return logs, nil
}

func (r *Repo) AddWorkout(ctx context.Context, workout WorkoutEntry) (_ *WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.addworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", workout.SubjectID))

	workout.Date = DayOf(workout.Date)

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_entry
				(subject_id, date, type, duration_minutes, intensity, calories_burned, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.SubjectID, workout.Date, workout.Type.String(),
		workout.DurationMinutes, workout.Intensity.String(), workout.CaloriesBurned,
		workout.Notes,
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

	workout.ID = id
	return &workout, nil
}

func (r *Repo) WorkoutsInRange(ctx context.Context, subjectID int, from, to time.Time) (_ []WorkoutEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.workoutsinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, date, type, duration_minutes, intensity, calories_burned, notes
			FROM workout_entry
			WHERE subject_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date, id;`,
		subjectID, DayOf(from), DayOf(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2workouts(rows)
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]WorkoutEntry, error) {
	var workouts []WorkoutEntry
	for rows.Next() {
		var id int
		var subjectID int
		var date time.Time
		var workoutType string
		var durationMinutes int
		var intensity string
		var caloriesBurned int
		var notes string
		if err := rows.Scan(&id, &subjectID, &date, &workoutType, &durationMinutes, &intensity, &caloriesBurned, &notes); err != nil {
			return nil, err
		}

		workouts = append(workouts, WorkoutEntry{
			ID:              id,
			SubjectID:       subjectID,
			Date:            date,
			Type:            WorkoutType(workoutType),
			DurationMinutes: durationMinutes,
			Intensity:       Intensity(intensity),
			CaloriesBurned:  caloriesBurned,
			Notes:           notes,
		})
	}

	if workouts == nil {
		workouts = make([]WorkoutEntry, 0)
	}

	return workouts, nil
}
