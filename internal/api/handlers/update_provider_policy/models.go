package update_provider_policy

import (
	"github.com/careslot/booking-service/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	SlotDurationMinutes int `json:"slotDurationMinutes"`
	LeadTimeHours       int `json:"leadTimeHours"`
	HorizonDays         int `json:"horizonDays"`
}

// ToServiceRequest converts the HTTP request into a service request
func (r *UpdatePolicyRequest) ToServiceRequest(providerID, userID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:              userID,
		ProviderID:          providerID,
		SlotDurationMinutes: r.SlotDurationMinutes,
		LeadTimeHours:       r.LeadTimeHours,
		HorizonDays:         r.HorizonDays,
	}
}
