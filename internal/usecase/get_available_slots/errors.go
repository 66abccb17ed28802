package get_available_slots

import "errors"

var (
	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidSchedule is returned when the provider profile carries an
	// unusable operating schedule
	ErrInvalidSchedule = errors.New("provider schedule is invalid")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("usecase: internal error")
)
