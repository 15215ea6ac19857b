package bidding

import (
	"fmt"

	"deliveryhub/internal/apperr"
)

var (
	ErrRequestNotOpen        = fmt.Errorf("request is not open for applications: %w", apperr.ErrInvalidState)
	ErrApplicationNotPending = fmt.Errorf("application is no longer pending: %w", apperr.ErrInvalidState)
)
