package create_booking

import "errors"

var (
	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrInvalidSchedule is returned when the provider profile carries an
	// unusable operating schedule
	ErrInvalidSchedule = errors.New("create_booking: provider schedule is invalid")

	// ErrInvalidDate is returned when the requested date is in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds the provider's
	// booking horizon
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrProviderClosed is returned when the provider does not operate on
	// the requested day
	ErrProviderClosed = errors.New("create_booking: provider is closed on this date")

	// ErrOutsideOperatingHours is returned when the requested time does not
	// fit inside the provider's operating window
	ErrOutsideOperatingHours = errors.New("create_booking: time is outside operating hours")

	// ErrTooLateToBook is returned when the slot violates the provider's
	// lead time requirement
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotConflict is returned when the requested slot overlaps an
	// active booking
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
