package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Oracle quotes a transporter's price for a shipment from the stored tariff.
type Oracle struct {
	repository Repository
}

func New(repository Repository) *Oracle {
	return &Oracle{
		repository: repository,
	}
}

// Quote returns 0 when the transporter has no tariff or the weight is not
// positive.
func (o *Oracle) Quote(ctx context.Context, transporterID uuid.UUID, weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, nil
	}

	tariff, err := o.repository.GetByTransporterID(ctx, transporterID)
	if err != nil {
		if errors.Is(err, ErrPricingNotConfigured) {
			return 0, nil
		}
		return 0, fmt.Errorf("get transporter pricing: %w", err)
	}

	return tariff.Quote(weightKg), nil
}
