package models

import (
	"time"

	"github.com/careslot/booking-service/internal/domain"
)

// Request models

// UpdatePolicyRequest replaces a provider's booking policy
type UpdatePolicyRequest struct {
	UserID              int64 `json:"userId"`
	ProviderID          int64 `json:"providerId"`
	SlotDurationMinutes int   `json:"slotDurationMinutes"`
	LeadTimeHours       int   `json:"leadTimeHours"`
	HorizonDays         int   `json:"horizonDays"`
}

// ToDomainPolicy converts the request into a domain policy
func (r *UpdatePolicyRequest) ToDomainPolicy() *domain.ProviderBookingPolicy {
	return &domain.ProviderBookingPolicy{
		ProviderID:          r.ProviderID,
		SlotDurationMinutes: r.SlotDurationMinutes,
		LeadTimeHours:       r.LeadTimeHours,
		HorizonDays:         r.HorizonDays,
	}
}

// Response models

// PolicyResponse is a provider booking policy as exposed by the service
type PolicyResponse struct {
	ProviderID          int64      `json:"providerId"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	LeadTimeHours       int        `json:"leadTimeHours"`
	HorizonDays         int        `json:"horizonDays"`
	IsDefault           bool       `json:"isDefault"`
	CreatedAt           *time.Time `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy converts a stored domain policy into a response
func FromDomainPolicy(p *domain.ProviderBookingPolicy) *PolicyResponse {
	resp := &PolicyResponse{
		ProviderID:          p.ProviderID,
		SlotDurationMinutes: p.SlotDurationMinutes,
		LeadTimeHours:       p.LeadTimeHours,
		HorizonDays:         p.HorizonDays,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = &p.CreatedAt
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

// FromDefaultPolicy marks a synthesized default policy in the response
func FromDefaultPolicy(p *domain.ProviderBookingPolicy) *PolicyResponse {
	resp := FromDomainPolicy(p)
	resp.IsDefault = true
	return resp
}
