package pricing

import (
	"fmt"

	"deliveryhub/internal/apperr"
)

var ErrPricingNotConfigured = fmt.Errorf("transporter pricing not configured: %w", apperr.ErrNotFound)

var (
	ErrNegativeTariff  = fmt.Errorf("tariff values must not be negative: %w", apperr.ErrValidation)
	ErrTariffNotFinite = fmt.Errorf("tariff values must be finite: %w", apperr.ErrValidation)
)
