package create_recurring_booking

import (
	"context"

	"github.com/careslot/booking-service/internal/usecase/create_booking"
)

// BookingCreator creates a single booking. Satisfied by the create_booking
// use case, each occurrence runs through its full slot validation.
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
