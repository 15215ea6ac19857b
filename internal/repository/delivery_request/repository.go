package delivery_request

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Create(ctx context.Context, request entities.DeliveryRequest) (*entities.DeliveryRequest, error) {
	m := FromDomain(&request)

	query := `
		INSERT INTO delivery_request (
			id, pickup_city, dropoff_city, item_type, description, weight_kg, pickup_date,
			customer_id, transporter_id, status, created_at, requested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + columns

	var created DeliveryRequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		m.ID,
		m.PickupCity,
		m.DropoffCity,
		m.ItemType,
		m.Description,
		m.WeightKg,
		m.PickupDate,
		m.CustomerID,
		m.TransporterID,
		m.Status,
		m.CreatedAt,
		m.RequestedAt,
	).Scan(created.scanTargets()...)
	if err != nil {
		return nil, repository.Unexpected(err, "delivery request repository create")
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

// GetByIDForShare blocks concurrent status changes but not other readers.
func (r *Repository) GetByIDForShare(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	return r.getByID(ctx, id, "FOR SHARE")
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, lock string) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + columns + ` FROM delivery_request WHERE id = $1 ` + lock

	var m DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, id).Scan(m.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, repository.Unexpected(err, "delivery request repository get %s", id)
	}

	return ToDomain(&m), nil
}

// Update applies modify only while the row is in modify.ExpectedStatus.
// A missed guard returns ErrRequestStatusChanged, a missing row
// ErrRequestNotFound.
func (r *Repository) Update(ctx context.Context, modify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	builder := qb.Update("delivery_request")

	// опциональные поля
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.TransporterID != nil {
		builder = builder.Set("transporter_id", *modify.TransporterID)
	}
	if modify.AcceptedAt != nil {
		builder = builder.Set("accepted_at", *modify.AcceptedAt)
	}
	if modify.AssignedAt != nil {
		builder = builder.Set("assigned_at", *modify.AssignedAt)
	}
	if modify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *modify.DeliveredAt)
	}
	if modify.DeclinedAt != nil {
		builder = builder.Set("declined_at", *modify.DeclinedAt)
	}
	if modify.DeclineReason != nil {
		builder = builder.Set("decline_reason", modify.DeclineReason.String())
	}
	if modify.DeclineMessage != nil {
		builder = builder.Set("decline_message", *modify.DeclineMessage)
	}
	if modify.DeclinedBy != nil {
		builder = builder.Set("declined_by", *modify.DeclinedBy)
	}
	if modify.DeclineDismissed != nil {
		builder = builder.Set("decline_dismissed", *modify.DeclineDismissed)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", *modify.CancelReason)
	}

	query, args, err := builder.
		Where(sq.Eq{
			"id":     modify.ID,
			"status": modify.ExpectedStatus.String(),
		}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, repository.Unexpected(err, "delivery request repository build update")
	}

	var m DeliveryRequestDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(m.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missedGuard(ctx, modify.ID)
		}
		return nil, repository.Unexpected(err, "delivery request repository update %s", modify.ID)
	}

	return ToDomain(&m), nil
}

func (r *Repository) missedGuard(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM delivery_request WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return repository.Unexpected(err, "delivery request repository exists %s", id)
	}
	if !exists {
		return entities.ErrRequestNotFound
	}
	return entities.ErrRequestStatusChanged
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryRequestFilter) ([]entities.DeliveryRequest, error) {
	builder := qb.Select(columns).From("delivery_request")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.TransporterID != nil {
		builder = builder.Where(sq.Eq{"transporter_id": *filter.TransporterID})
	}
	if filter.OnlyUnassigned {
		builder = builder.Where(sq.Eq{"transporter_id": nil})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}

	if filter.OldestFirst {
		builder = builder.OrderBy("created_at ASC", "id ASC")
	} else {
		builder = builder.OrderBy("created_at DESC", "id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repository.Unexpected(err, "delivery request repository build list")
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected(err, "delivery request repository list")
	}
	defer rows.Close()

	models := make([]DeliveryRequestDB, 0, 16)
	for rows.Next() {
		var m DeliveryRequestDB
		if err := rows.Scan(m.scanTargets()...); err != nil {
			return nil, repository.Unexpected(err, "delivery request repository list scan")
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected(err, "delivery request repository list rows")
	}

	return ToDomainList(models), nil
}

// CountStaleOffers counts direct offers requested before the given moment
// that are still waiting for the targeted transporter.
func (r *Repository) CountStaleOffers(ctx context.Context, requestedBefore time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_request
		WHERE status = 'REQUESTED'
		  AND requested_at < $1
	`

	var count int64
	if err := r.querier.QueryRow(ctx, query, requestedBefore).Scan(&count); err != nil {
		return 0, repository.Unexpected(err, "delivery request repository count stale offers")
	}
	return count, nil
}
