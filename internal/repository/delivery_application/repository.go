package delivery_application

import (
	"context"
	"errors"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create relies on the (delivery_request_id, transporter_id) unique index
// to reject a second application of the same transporter.
func (r *Repository) Create(ctx context.Context, app entities.DeliveryApplication) (*entities.DeliveryApplication, error) {
	query := `
		INSERT INTO delivery_application (id, delivery_request_id, transporter_id, quoted_price, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	var m DeliveryApplicationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		app.ID,
		app.RequestID,
		app.TransporterID,
		app.QuotedPrice,
		app.Status.String(),
		app.AppliedAt,
	).Scan(m.scanTargets()...)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, entities.ErrApplicationExists
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, entities.ErrRequestNotFound
		}
		return nil, repository.Unexpected(err, "delivery application repository create")
	}

	return ToDomain(&m), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryApplication, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.DeliveryApplication, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, lock string) (*entities.DeliveryApplication, error) {
	query := `SELECT ` + columns + ` FROM delivery_application WHERE id = $1 ` + lock

	var m DeliveryApplicationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(m.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrApplicationNotFound
		}
		return nil, repository.Unexpected(err, "delivery application repository get %s", id)
	}
	return ToDomain(&m), nil
}

// ListByRequest returns every application of the request, oldest first.
func (r *Repository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entities.DeliveryApplication, error) {
	return r.list(ctx, qb.Select(columns).
		From("delivery_application").
		Where(sq.Eq{"delivery_request_id": requestID}).
		OrderBy("applied_at ASC", "id ASC"))
}

// ListByTransporter returns the transporter's applications, newest first.
func (r *Repository) ListByTransporter(ctx context.Context, transporterID uuid.UUID) ([]entities.DeliveryApplication, error) {
	return r.list(ctx, qb.Select(columns).
		From("delivery_application").
		Where(sq.Eq{"transporter_id": transporterID}).
		OrderBy("applied_at DESC", "id DESC"))
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.DeliveryApplication, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repository.Unexpected(err, "delivery application repository build list")
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected(err, "delivery application repository list")
	}
	defer rows.Close()

	models := make([]DeliveryApplicationDB, 0, 8)
	for rows.Next() {
		var m DeliveryApplicationDB
		if err := rows.Scan(m.scanTargets()...); err != nil {
			return nil, repository.Unexpected(err, "delivery application repository list scan")
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected(err, "delivery application repository list rows")
	}

	return ToDomainList(models), nil
}

// UpdateStatus moves an application from one status to another.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entities.ApplicationStatus,
) (*entities.DeliveryApplication, error) {
	query := `
		UPDATE delivery_application
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + columns

	var m DeliveryApplicationDB
	err := r.querier.QueryRow(ctx, query, id, from.String(), to.String()).Scan(m.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, entities.ErrApplicationStatusChanged
		}
		return nil, repository.Unexpected(err, "delivery application repository update status %s", id)
	}
	return ToDomain(&m), nil
}

// RejectPending rejects every pending application of the request except
// the one with exceptID (when given).
func (r *Repository) RejectPending(ctx context.Context, requestID uuid.UUID, exceptID *uuid.UUID) (int64, error) {
	builder := qb.Update("delivery_application").
		Set("status", entities.ApplicationRejected.String()).
		Where(sq.Eq{
			"delivery_request_id": requestID,
			"status":              entities.ApplicationPending.String(),
		})
	if exceptID != nil {
		builder = builder.Where(sq.NotEq{"id": *exceptID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, repository.Unexpected(err, "delivery application repository build reject")
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, repository.Unexpected(err, "delivery application repository reject pending of %s", requestID)
	}
	return tag.RowsAffected(), nil
}

// AcceptPendingOf accepts the transporter's pending application on the
// request, if there is one. It returns the accepted application or nil.
func (r *Repository) AcceptPendingOf(
	ctx context.Context,
	requestID, transporterID uuid.UUID,
) (*entities.DeliveryApplication, error) {
	query := `
		UPDATE delivery_application
		SET status = 'ACCEPTED'
		WHERE delivery_request_id = $1
		  AND transporter_id = $2
		  AND status = 'PENDING'
		RETURNING ` + columns

	var m DeliveryApplicationDB
	err := r.querier.QueryRow(ctx, query, requestID, transporterID).Scan(m.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.Unexpected(err, "delivery application repository accept pending of %s", transporterID)
	}
	return ToDomain(&m), nil
}
