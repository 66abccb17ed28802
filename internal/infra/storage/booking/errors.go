package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking row matches
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusChanged is returned when a conditional status update matched
	// the booking ID but not the expected current status: another writer got
	// there first
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
