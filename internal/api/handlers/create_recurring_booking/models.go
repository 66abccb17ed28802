package create_recurring_booking

import (
	"time"

	"github.com/careslot/booking-service/internal/domain"
	createBookingHandler "github.com/careslot/booking-service/internal/api/handlers/create_booking"
	createRecurringBooking "github.com/careslot/booking-service/internal/usecase/create_recurring_booking"
	"github.com/careslot/booking-service/pkg/types"
)

// CreateRecurringBookingRequest HTTP request model
type CreateRecurringBookingRequest struct {
	Type        string  `json:"type"`       // "tour" or "enrollment"
	ProviderID  int64   `json:"providerId"`
	SubjectID   *int64  `json:"subjectId,omitempty"`
	SubjectName *string `json:"subjectName,omitempty"`
	Pattern     string  `json:"pattern"`    // "weekly", "biweekly" or "monthly"
	StartDate   string  `json:"startDate"`  // "2025-10-15"
	EndDate     string  `json:"endDate"`    // "2025-12-31"
	StartTime   string  `json:"startTime"`  // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// SkippedOccurrenceResponse explains one unbooked date in the series
type SkippedOccurrenceResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// RecurringBookingResponse HTTP response model
type RecurringBookingResponse struct {
	SeriesID string                                   `json:"seriesId"`
	Created  []*createBookingHandler.BookingResponse  `json:"created"`
	Skipped  []SkippedOccurrenceResponse              `json:"skipped"`
}

// ToUseCaseRequest converts the HTTP request into a use case request.
// requesterID comes from the auth middleware, not the body.
func (r *CreateRecurringBookingRequest) ToUseCaseRequest(requesterID int64) (*createRecurringBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createRecurringBooking.Request{
		Type:        domain.BookingType(r.Type),
		ProviderID:  r.ProviderID,
		RequesterID: requesterID,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Pattern:     domain.RecurrencePattern(r.Pattern),
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts a use case response into the HTTP model
func FromUseCaseResponse(resp *createRecurringBooking.Response) *RecurringBookingResponse {
	created := make([]*createBookingHandler.BookingResponse, 0, len(resp.Created))
	for _, b := range resp.Created {
		created = append(created, createBookingHandler.FromUseCaseResponse(b))
	}

	skipped := make([]SkippedOccurrenceResponse, 0, len(resp.Skipped))
	for _, s := range resp.Skipped {
		skipped = append(skipped, SkippedOccurrenceResponse{
			Date:   s.Date.Format(domain.DateFormat),
			Reason: s.Reason,
		})
	}

	return &RecurringBookingResponse{
		SeriesID: resp.SeriesID.String(),
		Created:  created,
		Skipped:  skipped,
	}
}
