package pricing

import (
	"context"
	"fmt"
	"math"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/service/access"
)

// Service lets a verified transporter read and replace their own tariff.
type Service struct {
	repository TariffRepository
}

func NewService(repository TariffRepository) *Service {
	return &Service{
		repository: repository,
	}
}

// GetTariff fails with ErrPricingNotConfigured until a tariff is set.
func (s *Service) GetTariff(ctx context.Context, actor entities.Actor) (*entities.TransporterPricing, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}

	tariff, err := s.repository.GetByTransporterID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get tariff: %w", err)
	}
	return tariff, nil
}

// SetTariff stores the tariff under the actor's id, whatever TransporterID
// the input carries.
func (s *Service) SetTariff(ctx context.Context, actor entities.Actor, in entities.TransporterPricing) (*entities.TransporterPricing, error) {
	if err := access.RequireVerifiedTransporter(actor); err != nil {
		return nil, err
	}
	if err := validateTariff(in); err != nil {
		return nil, err
	}

	in.TransporterID = actor.ID
	if err := s.repository.Upsert(ctx, in); err != nil {
		return nil, fmt.Errorf("upsert tariff: %w", err)
	}
	return &in, nil
}

func validateTariff(p entities.TransporterPricing) error {
	for _, v := range []float64{p.WeightThresholdKg, p.FixedPriceUnderThreshold, p.RatePerKg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrTariffNotFinite
		}
		if v < 0 {
			return ErrNegativeTariff
		}
	}
	return nil
}
