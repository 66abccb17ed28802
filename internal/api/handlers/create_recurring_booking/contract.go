package create_recurring_booking

import (
	"context"

	createRecurringBooking "github.com/careslot/booking-service/internal/usecase/create_recurring_booking"
)

type CreateRecurringBookingUseCase interface {
	Execute(ctx context.Context, req *createRecurringBooking.Request) (*createRecurringBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
