package create_recurring_booking

import "errors"

var (
	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("create_recurring_booking: provider not found")

	// ErrUnknownPattern is returned on an unrecognized recurrence pattern
	ErrUnknownPattern = errors.New("create_recurring_booking: unknown recurrence pattern")

	// ErrInvalidDateRange is returned when endDate precedes startDate
	ErrInvalidDateRange = errors.New("create_recurring_booking: invalid date range")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_recurring_booking: invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("create_recurring_booking: internal error")
)
