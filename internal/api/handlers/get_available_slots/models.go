package get_available_slots

import (
	"time"

	"github.com/careslot/booking-service/internal/domain"
	getAvailableSlots "github.com/careslot/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one candidate visit start
type SlotResponse struct {
	Time      string `json:"time"`      // "10:00"
	StartsAt  string `json:"startsAt"`  // RFC3339 instant
	Available bool   `json:"available"`
}

// DayResponse is the calendar for one day
type DayResponse struct {
	Date      string         `json:"date"` // "2025-10-15"
	DayOfWeek string         `json:"dayOfWeek"`
	IsOpen    bool           `json:"isOpen"`
	Slots     []SlotResponse `json:"slots"`
}

// AvailabilityResponse is the HTTP response model
type AvailabilityResponse struct {
	ProviderID          int64         `json:"providerId"`
	SlotDurationMinutes int           `json:"slotDurationMinutes"`
	Days                []DayResponse `json:"days"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Time:      slot.Time.String(),
				StartsAt:  slot.StartsAt.Format(time.RFC3339),
				Available: slot.Available,
			})
		}
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayOfWeek: day.DayOfWeek.String(),
			IsOpen:    day.IsOpen,
			Slots:     slots,
		})
	}

	return &AvailabilityResponse{
		ProviderID:          resp.ProviderID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Days:                days,
	}
}
