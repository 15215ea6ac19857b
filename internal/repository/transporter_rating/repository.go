package transporter_rating

import (
	"context"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/repository"

	"github.com/google/uuid"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// UpsertSnapshot stores the snapshot unless a newer one is already stored,
// so redelivered or reordered messages do not roll the projection back.
// It reports whether the row changed.
func (r *Repository) UpsertSnapshot(ctx context.Context, s entities.RatingSnapshot) (bool, error) {
	query := `
		INSERT INTO transporter_rating (transporter_id, average_rating, total_ratings, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transporter_id) DO UPDATE
		SET average_rating = EXCLUDED.average_rating,
		    total_ratings = EXCLUDED.total_ratings,
		    updated_at = EXCLUDED.updated_at
		WHERE transporter_rating.updated_at < EXCLUDED.updated_at
	`

	tag, err := r.querier.Exec(ctx, query, s.TransporterID, s.AverageRating, s.TotalRatings, s.UpdatedAt)
	if err != nil {
		return false, repository.Unexpected(err, "transporter rating repository upsert %s", s.TransporterID)
	}
	return tag.RowsAffected() > 0, nil
}

// GetStats aggregates the rating projection and the number of delivered
// requests for each transporter. Transporters without data get zero stats.
func (r *Repository) GetStats(ctx context.Context, transporterIDs []uuid.UUID) (map[uuid.UUID]entities.TransporterStats, error) {
	result := make(map[uuid.UUID]entities.TransporterStats, len(transporterIDs))
	if len(transporterIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ids.id,
		       COALESCE(tr.average_rating, 0),
		       COALESCE(tr.total_ratings, 0),
		       (SELECT COUNT(*)
		          FROM delivery_request dr
		         WHERE dr.transporter_id = ids.id
		           AND dr.status = 'DELIVERED')
		FROM UNNEST($1::uuid[]) AS ids(id)
		LEFT JOIN transporter_rating tr ON tr.transporter_id = ids.id
	`

	rows, err := r.querier.Query(ctx, query, transporterIDs)
	if err != nil {
		return nil, repository.Unexpected(err, "transporter rating repository stats")
	}
	defer rows.Close()

	for rows.Next() {
		var s entities.TransporterStats
		if err := rows.Scan(&s.TransporterID, &s.AverageRating, &s.TotalRatings, &s.CompletedDeliveries); err != nil {
			return nil, repository.Unexpected(err, "transporter rating repository stats scan")
		}
		result[s.TransporterID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unexpected(err, "transporter rating repository stats rows")
	}

	return result, nil
}
