package get_available_slots

import (
	"context"
	"time"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
)

// BookingRepository is the booking query surface this use case needs
type BookingRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error)
}

// PolicyRepository fetches per-provider booking policies
type PolicyRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderBookingPolicy, error)
}

// ProviderServiceClient fetches provider profiles
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// TimeProvider supplies the current time (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
