package get_available_slots

import (
	"github.com/careslot/booking-service/internal/domain"
)

// Request asks for a provider's availability calendar
type Request struct {
	ProviderID int64
	// DaysAhead overrides the provider policy horizon when set (> 0).
	// It is clamped to the policy horizon, never extended past it.
	DaysAhead int
}

// Response is the generated availability calendar
type Response struct {
	ProviderID          int64
	SlotDurationMinutes int
	Days                []domain.DayAvailability
}
