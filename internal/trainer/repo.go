package trainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/subjects"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

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

func (r *Repo) AddPlan(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainer.addplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", plan.TrainerID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO trainer_plan
				(trainer_id, subject_id, type, title, description, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		plan.TrainerID, plan.SubjectID, plan.Type.String(),
		plan.Title, plan.Description, plan.CreatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, subjects.ErrSubjectNotFound
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, subjects.ErrSubjectNotFound
		}
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	plan.ID = id
	return &plan, nil
}

// PlansForSubject returns the plans written for a subject, newest first.
func (r *Repo) PlansForSubject(ctx context.Context, subjectID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainer.plansforsubject")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, trainer_id, subject_id, type, title, description, created_at
			FROM trainer_plan
			WHERE subject_id = $1
			ORDER BY created_at DESC, id DESC;`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2plans(rows)
}

func (r *Repo) DeletePlan(ctx context.Context, planID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainer.deleteplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	tag, err := r.db.Exec(ctx, `DELETE FROM trainer_plan WHERE id = $1;`, planID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]Plan, error) {
	var plans []Plan
	for rows.Next() {
		var id int
		var trainerID int
		var subjectID int
		var planType string
		var title string
		var description string
		var createdAt time.Time
		if err := rows.Scan(&id, &trainerID, &subjectID, &planType, &title, &description, &createdAt); err != nil {
			return nil, err
		}

		plans = append(plans, Plan{
			ID:          id,
			TrainerID:   trainerID,
			SubjectID:   subjectID,
			Type:        PlanType(planType),
			Title:       title,
			Description: description,
			CreatedAt:   createdAt,
		})
	}

	if plans == nil {
		plans = make([]Plan, 0)
	}

	return plans, nil
}
