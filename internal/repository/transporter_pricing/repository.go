package transporter_pricing

import (
	"context"
	"errors"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/repository"
	"deliveryhub/internal/service/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByTransporterID(ctx context.Context, transporterID uuid.UUID) (*entities.TransporterPricing, error) {
	query := `
		SELECT transporter_id, weight_threshold_kg, fixed_price_under_threshold, rate_per_kg
		FROM transporter_pricing
		WHERE transporter_id = $1
	`

	var p entities.TransporterPricing
	err := r.querier.QueryRow(ctx, query, transporterID).Scan(
		&p.TransporterID,
		&p.WeightThresholdKg,
		&p.FixedPriceUnderThreshold,
		&p.RatePerKg,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrPricingNotConfigured
		}
		return nil, repository.Unexpected(err, "transporter pricing repository get %s", transporterID)
	}
	return &p, nil
}

// Upsert replaces the tariff of a transporter.
func (r *Repository) Upsert(ctx context.Context, p entities.TransporterPricing) error {
	query := `
		INSERT INTO transporter_pricing (transporter_id, weight_threshold_kg, fixed_price_under_threshold, rate_per_kg)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transporter_id) DO UPDATE
		SET weight_threshold_kg = EXCLUDED.weight_threshold_kg,
		    fixed_price_under_threshold = EXCLUDED.fixed_price_under_threshold,
		    rate_per_kg = EXCLUDED.rate_per_kg
	`

	_, err := r.querier.Exec(ctx, query, p.TransporterID, p.WeightThresholdKg, p.FixedPriceUnderThreshold, p.RatePerKg)
	if err != nil {
		return repository.Unexpected(err, "transporter pricing repository upsert %s", p.TransporterID)
	}
	return nil
}
