package transition_booking

import (
	"context"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Transition(ctx context.Context, bookingID int64, action domain.Action, req *models.TransitionRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
