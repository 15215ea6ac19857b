package lifecycle

import (
	"fmt"

	"deliveryhub/internal/apperr"
)

// Input errors.
var (
	ErrMissingPickupCity     = fmt.Errorf("pickup city is required: %w", apperr.ErrValidation)
	ErrMissingDropoffCity    = fmt.Errorf("dropoff city is required: %w", apperr.ErrValidation)
	ErrMissingItemType       = fmt.Errorf("item type is required: %w", apperr.ErrValidation)
	ErrFieldTooLong          = fmt.Errorf("field is too long: %w", apperr.ErrValidation)
	ErrInvalidWeight         = fmt.Errorf("weight must be positive: %w", apperr.ErrValidation)
	ErrPickupDateNotInFuture = fmt.Errorf("pickup date must be after today: %w", apperr.ErrValidation)
	ErrSelfTarget            = fmt.Errorf("customer cannot target themselves: %w", apperr.ErrValidation)
	ErrUnknownStatus         = fmt.Errorf("unknown request status: %w", apperr.ErrValidation)
	ErrUnknownDeclineReason  = fmt.Errorf("unknown decline reason: %w", apperr.ErrValidation)
)

// State errors.
var (
	ErrNotBoundTransporter = fmt.Errorf("request is bound to another transporter: %w", apperr.ErrUnauthorized)
	ErrNotVisible          = fmt.Errorf("request is not visible to the actor: %w", apperr.ErrUnauthorized)

	ErrNotAwaitingAcceptance = fmt.Errorf("request is not awaiting offer acceptance: %w", apperr.ErrInvalidState)
	ErrNotDeclinable         = fmt.Errorf("only pending or assigned requests can be declined: %w", apperr.ErrInvalidState)
	ErrNotDeclined           = fmt.Errorf("request is not declined: %w", apperr.ErrInvalidState)
	ErrNotCancellable        = fmt.Errorf("only assigned requests can be cancelled: %w", apperr.ErrInvalidState)

	ErrTransitionNotAllowed = fmt.Errorf("request status %w", apperr.ErrInvalidTransition)
	ErrAlreadyTaken         = fmt.Errorf("request %w", apperr.ErrAlreadyTaken)
	ErrOfferExpired         = fmt.Errorf("direct offer %w", apperr.ErrExpired)
	ErrAlreadyDismissed     = fmt.Errorf("decline %w", apperr.ErrAlreadyDismissed)
)
