package policy

import "errors"

var (
	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("provider not found")

	// ErrAccessDenied is returned when the user may not manage the policy
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
