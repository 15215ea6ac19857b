package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"deliveryhub/internal/apperr"
)

var (
	// ErrMalformedRequest covers bodies and path parameters that cannot be
	// decoded at all.
	ErrMalformedRequest = fmt.Errorf("malformed request: %w", apperr.ErrValidation)

	ErrNoActor = errors.New("request has no authenticated actor")
)

type errorClass struct {
	class  error
	status int
	code   string
}

// Checked in order; every business error wraps exactly one class.
var errorClasses = []errorClass{
	{class: apperr.ErrValidation, status: http.StatusBadRequest, code: "validation_failed"},
	{class: apperr.ErrUnauthorized, status: http.StatusForbidden, code: "forbidden"},
	{class: apperr.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
	{class: apperr.ErrInvalidState, status: http.StatusConflict, code: "invalid_state"},
	{class: apperr.ErrInvalidTransition, status: http.StatusConflict, code: "invalid_transition"},
	{class: apperr.ErrAlreadyTaken, status: http.StatusConflict, code: "already_taken"},
	{class: apperr.ErrDuplicateApplication, status: http.StatusConflict, code: "duplicate_application"},
	{class: apperr.ErrAlreadyDismissed, status: http.StatusConflict, code: "already_dismissed"},
	{class: apperr.ErrExpired, status: http.StatusGone, code: "expired"},
}

// Classify returns the HTTP status and error code for err. ok is false
// for infrastructure failures.
func Classify(err error) (status int, code string, ok bool) {
	if errors.Is(err, ErrNoActor) {
		return http.StatusUnauthorized, "unauthenticated", true
	}
	for _, c := range errorClasses {
		if errors.Is(err, c.class) {
			return c.status, c.code, true
		}
	}
	return http.StatusInternalServerError, "internal", false
}
