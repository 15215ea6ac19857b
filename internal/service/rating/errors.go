package rating

import (
	"fmt"

	"deliveryhub/internal/apperr"
)

var (
	ErrMissingTransporterID = fmt.Errorf("rating snapshot without transporter id: %w", apperr.ErrValidation)
	ErrInvalidAverage       = fmt.Errorf("average rating out of range: %w", apperr.ErrValidation)
	ErrInvalidTotal         = fmt.Errorf("negative ratings total: %w", apperr.ErrValidation)
	ErrMissingTimestamp     = fmt.Errorf("rating snapshot without timestamp: %w", apperr.ErrValidation)
)
