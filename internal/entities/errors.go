package entities

import (
	"fmt"

	"deliveryhub/internal/apperr"
)

// Store level errors shared by the request and application repositories.
var (
	ErrRequestNotFound     = fmt.Errorf("delivery request %w", apperr.ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("delivery application %w", apperr.ErrNotFound)

	// ErrRequestStatusChanged is returned by a guarded update whose expected
	// status no longer matches the row.
	ErrRequestStatusChanged = fmt.Errorf("delivery request status changed: %w", apperr.ErrInvalidState)

	ErrApplicationStatusChanged = fmt.Errorf("delivery application status changed: %w", apperr.ErrInvalidState)

	ErrApplicationExists = fmt.Errorf("transporter already applied: %w", apperr.ErrDuplicateApplication)
)
