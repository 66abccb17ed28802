package policy

import (
	"context"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
)

// PolicyRepository is the policy storage surface the service needs
type PolicyRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderBookingPolicy, error)
	Upsert(ctx context.Context, policy *domain.ProviderBookingPolicy) (*domain.ProviderBookingPolicy, error)
}

// ProviderServiceClient fetches provider profiles, used for staff checks
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
