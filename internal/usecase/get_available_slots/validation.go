package get_available_slots

import (
	"fmt"

	"github.com/careslot/booking-service/internal/domain"
)

// validateRequest checks the request's shape
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.DaysAhead < 0 || req.DaysAhead > domain.MaxHorizonDays {
		return fmt.Errorf("%w: daysAhead must be between 0 and %d", ErrInvalidInput, domain.MaxHorizonDays)
	}

	return nil
}
