package providerservice

import (
	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/pkg/types"
)

// Provider is a provider profile as served by ProviderService
type Provider struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Kind          string   `json:"kind"` // "daycare" | "clinic"
	OpeningTime   string   `json:"openingTime"`
	ClosingTime   string   `json:"closingTime"`
	OperatingDays []string `json:"operatingDays"` // weekday names
	StaffIDs      []int64  `json:"staffIds"`
}

// Schedule converts the profile's operating window into the domain schedule.
func (p *Provider) Schedule() (domain.ProviderSchedule, error) {
	opening, err := types.NewTimeStringFromString(p.OpeningTime)
	if err != nil {
		return domain.ProviderSchedule{}, err
	}
	closing, err := types.NewTimeStringFromString(p.ClosingTime)
	if err != nil {
		return domain.ProviderSchedule{}, err
	}
	days, err := domain.OperatingDaysFromNames(p.OperatingDays)
	if err != nil {
		return domain.ProviderSchedule{}, err
	}

	return domain.ProviderSchedule{
		OpeningTime:   opening,
		ClosingTime:   closing,
		OperatingDays: days,
	}, nil
}

// IsStaff reports whether userID belongs to the provider's staff.
func (p *Provider) IsStaff(userID int64) bool {
	for _, id := range p.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}
