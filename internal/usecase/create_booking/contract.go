package create_booking

import (
	"context"
	"time"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
)

// BookingRepository is the booking storage surface this use case needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
