package subjects

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func (r *Repo) Add(ctx context.Context, subject Subject) (_ *Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO subject
				(username, password_hash, name, role, trainer_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		subject.Username, subject.PasswordHash, subject.Name,
		subject.Role.String(), subject.TrainerID, subject.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil && pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("subject.id", id))

	subject.ID = id
	return &subject, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.getByQuery(
		ctx,
		`SELECT id, username, password_hash, name, role, trainer_id, created_at
			FROM subject WHERE id = $1;`,
		id,
	)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getByQuery(
		ctx,
		`SELECT id, username, password_hash, name, role, trainer_id, created_at
			FROM subject WHERE username = $1;`,
		username,
	)
}

// ClientsOfTrainer returns the individuals assigned to a trainer,
// oldest assignment first.
func (r *Repo) ClientsOfTrainer(ctx context.Context, trainerID int) (_ []Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.clientsoftrainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer_id", trainerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, username, password_hash, name, role, trainer_id, created_at
			FROM subject
			WHERE trainer_id = $1
			ORDER BY id;`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2subjects(rows)
}

// SetTrainer assigns or clears (nil) the trainer of a subject.
func (r *Repo) SetTrainer(ctx context.Context, subjectID int, trainerID *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subjects.settrainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE subject SET trainer_id = $1 WHERE id = $2;`,
		trainerID, subjectID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}

	return nil
}

func (r *Repo) getByQuery(ctx context.Context, query string, arg any) (*Subject, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	subjects, err := r.rows2subjects(rows)
	if err != nil {
		return nil, err
	}

	if len(subjects) != 1 {
		return nil, ErrSubjectNotFound
	}

	return &subjects[0], nil
}

func (r *Repo) rows2subjects(rows pgx.Rows) ([]Subject, error) {
	var subjects []Subject
	for rows.Next() {
		var id int
		var username string
		var passwordHash string
		var name string
		var role string
		var trainerID *int
		var createdAt time.Time
		if err := rows.Scan(&id, &username, &passwordHash, &name, &role, &trainerID, &createdAt); err != nil {
			return nil, err
		}

		subjects = append(subjects, Subject{
			ID:           id,
			Username:     username,
			PasswordHash: passwordHash,
			Name:         name,
			Role:         Role(role),
			TrainerID:    trainerID,
			CreatedAt:    createdAt,
		})
	}

	if subjects == nil {
		subjects = make([]Subject, 0)
	}

	return subjects, nil
}
