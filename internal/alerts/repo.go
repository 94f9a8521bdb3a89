package alerts

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

func (r *Repo) Add(ctx context.Context, alert Alert) (_ *Alert, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO alert
				(subject_id, type, severity, message, read, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		alert.SubjectID, alert.Type.String(), alert.Severity.String(),
		alert.Message, alert.Read, alert.CreatedAt,
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

	span.SetAttributes(attribute.Int("alert.id", id))

	alert.ID = id
	return &alert, nil
}

// ListForSubject returns the subject's alerts, newest first. With
// unreadOnly set, already read alerts are filtered out.
func (r *Repo) ListForSubject(ctx context.Context, subjectID int, unreadOnly bool) (_ []Alert, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.listforsubject")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))
	span.SetAttributes(attribute.Bool("unread_only", unreadOnly))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, subject_id, type, severity, message, read, created_at
			FROM alert
			WHERE subject_id = $1
			AND ($2::boolean IS FALSE OR read IS FALSE)
			ORDER BY created_at DESC, id DESC;`,
		subjectID, unreadOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2alerts(rows)
}

func (r *Repo) UnreadCount(ctx context.Context, subjectID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.unreadcount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM alert WHERE subject_id = $1 AND read IS FALSE;`,
		subjectID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repo) MarkRead(ctx context.Context, alertID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.markread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("alert.id", alertID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE alert SET read = TRUE WHERE id = $1;`,
		alertID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAlertNotFound
	}

	return nil
}

// MarkAllRead marks every unread alert of a subject as read and
// returns how many were affected.
func (r *Repo) MarkAllRead(ctx context.Context, subjectID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.markallread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("subject_id", subjectID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE alert SET read = TRUE WHERE subject_id = $1 AND read IS FALSE;`,
		subjectID,
	)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

// DeleteReadOlderThan removes read alerts created before the cutoff.
// Unread alerts are kept regardless of age.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.alerts.deletereadolderthan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM alert WHERE read IS TRUE AND created_at < $1;`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	deleted := int(tag.RowsAffected())
	span.SetAttributes(attribute.Int("deleted", deleted))
	return deleted, nil
}

func (r *Repo) rows2alerts(rows pgx.Rows) ([]Alert, error) {
	var alerts []Alert
	for rows.Next() {
		var id int
		var subjectID int
		var alertType string
		var severity string
		var message string
		var read bool
		var createdAt time.Time
		if err := rows.Scan(&id, &subjectID, &alertType, &severity, &message, &read, &createdAt); err != nil {
			return nil, err
		}

		alerts = append(alerts, Alert{
			ID:        id,
			SubjectID: subjectID,
			Type:      AlertType(alertType),
			Severity:  Severity(severity),
			Message:   message,
			Read:      read,
			CreatedAt: createdAt,
		})
	}

	if alerts == nil {
		alerts = make([]Alert, 0)
	}

	return alerts, nil
}
