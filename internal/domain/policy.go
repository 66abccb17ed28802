package domain

import (
	"fmt"
	"time"
)

// ProviderBookingPolicy is a provider's stored booking configuration.
// The weekly operating schedule itself lives on the provider profile; the
// policy only tunes how that schedule is carved into bookable slots.
type ProviderBookingPolicy struct {
	ProviderID          int64
	SlotDurationMinutes int
	LeadTimeHours       int
	HorizonDays         int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultBookingPolicy is the fallback for providers without a stored policy.
func DefaultBookingPolicy(providerID int64) *ProviderBookingPolicy {
	return &ProviderBookingPolicy{
		ProviderID:          providerID,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		LeadTimeHours:       DefaultLeadTimeHours,
		HorizonDays:         DefaultHorizonDays,
	}
}

// LeadTime returns the minimum notice as a duration.
func (p *ProviderBookingPolicy) LeadTime() time.Duration {
	return time.Duration(p.LeadTimeHours) * time.Hour
}

// AvailabilityOptions converts the policy into slot-generation options.
func (p *ProviderBookingPolicy) AvailabilityOptions() AvailabilityOptions {
	return AvailabilityOptions{
		DaysAhead:           p.HorizonDays,
		SlotDurationMinutes: p.SlotDurationMinutes,
		LeadTime:            p.LeadTime(),
	}
}

// Validate checks the policy against business bounds.
func (p *ProviderBookingPolicy) Validate() error {
	if p.SlotDurationMinutes < MinSlotDurationMinutes || p.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("slot duration must be between %d and %d minutes",
			MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if p.LeadTimeHours < MinLeadTimeHours || p.LeadTimeHours > MaxLeadTimeHours {
		return fmt.Errorf("lead time must be between %d and %d hours",
			MinLeadTimeHours, MaxLeadTimeHours)
	}
	if p.HorizonDays < MinHorizonDays || p.HorizonDays > MaxHorizonDays {
		return fmt.Errorf("horizon must be between %d and %d days",
			MinHorizonDays, MaxHorizonDays)
	}
	return nil
}
