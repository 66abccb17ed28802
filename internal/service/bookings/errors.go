package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("provider not found")

	// ErrAccessDenied is returned when the user may not act on the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition is returned when the action is not legal for the
	// booking's current status, including a concurrent status change
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
