//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"

	"deliveryhub/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	GetByTransporterID(ctx context.Context, transporterID uuid.UUID) (*entities.TransporterPricing, error)
}

// TariffRepository is what transporters manage their own tariff through.
type TariffRepository interface {
	GetByTransporterID(ctx context.Context, transporterID uuid.UUID) (*entities.TransporterPricing, error)
	Upsert(ctx context.Context, p entities.TransporterPricing) error
}
