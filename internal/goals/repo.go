package goals

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

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goal
				(subject_id, type, target_value, current_value, start_date, end_date, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		goal.SubjectID, goal.Type.String(), goal.TargetValue, goal.CurrentValue,
		goal.StartDate, goal.EndDate, goal.Status.String(),
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

	span.SetAttributes(attribute.Int("goal.id", id))

	goal.ID = id
	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, type, target_value, current_value, start_date, end_date, status
			FROM goal
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	goals, err := r.rows2goals(rows)
	if err != nil {
		return nil, err
	}

	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}

	return &goals[0], nil
}

func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", goal.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET current_value = $1, status = $2 WHERE id = $3;`,
		goal.CurrentValue, goal.Status.String(), goal.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// ListActive returns the in-progress goals of a subject, oldest first.
func (r *Repo) ListActive(ctx context.Context, subjectID int) (_ []Goal, err error) {
	return r.list(ctx, subjectID, true)
}

// ListAll returns all goals of a subject, oldest first.
func (r *Repo) ListAll(ctx context.Context, subjectID int) (_ []Goal, err error) {
	return r.list(ctx, subjectID, false)
}

func (r *Repo) list(ctx context.Context, subjectID int, activeOnly bool) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))
	span.SetAttributes(attribute.Bool("active_only", activeOnly))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, type, target_value, current_value, start_date, end_date, status
			FROM goal
			WHERE subject_id = $1
			AND ($2::boolean IS FALSE OR status = 'in_progress')
			ORDER BY start_date, id;`,
		subjectID, activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2goals(rows)
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var id int
		var subjectID int
		var goalType string
		var targetValue float64
		var currentValue float64
		var startDate time.Time
		var endDate time.Time
		var status string
		if err := rows.Scan(&id, &subjectID, &goalType, &targetValue, &currentValue, &startDate, &endDate, &status); err != nil {
			return nil, err
		}

		goals = append(goals, Goal{
			ID:           id,
			SubjectID:    subjectID,
			Type:         GoalType(goalType),
			TargetValue:  targetValue,
			CurrentValue: currentValue,
			StartDate:    startDate,
			EndDate:      endDate,
			Status:       GoalStatus(status),
		})
	}

	if goals == nil {
		goals = make([]Goal, 0)
	}

	return goals, nil
}
