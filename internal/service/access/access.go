// Package access holds the role checks shared by the lifecycle and bidding
// services.
package access

import (
	"fmt"

	"deliveryhub/internal/apperr"
	"deliveryhub/internal/entities"
)

var (
	ErrNotCustomer    = fmt.Errorf("actor is not a customer: %w", apperr.ErrUnauthorized)
	ErrNotTransporter = fmt.Errorf("actor is not a transporter: %w", apperr.ErrUnauthorized)
	ErrNotVerified    = fmt.Errorf("transporter is not verified: %w", apperr.ErrUnauthorized)
	ErrNotOwner       = fmt.Errorf("request belongs to another customer: %w", apperr.ErrUnauthorized)
)

func RequireCustomer(actor entities.Actor) error {
	if !actor.Is(entities.RoleCustomer) {
		return ErrNotCustomer
	}
	return nil
}

// RequireVerifiedTransporter guards every transporter operation.
func RequireVerifiedTransporter(actor entities.Actor) error {
	if !actor.Is(entities.RoleTransporter) {
		return ErrNotTransporter
	}
	if !actor.Verified {
		return ErrNotVerified
	}
	return nil
}

func RequireOwner(actor entities.Actor, request *entities.DeliveryRequest) error {
	if !request.OwnedBy(actor.ID) {
		return ErrNotOwner
	}
	return nil
}
