package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
	createBooking "github.com/careslot/booking-service/internal/usecase/create_booking"
	"github.com/careslot/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Type        string  `json:"type"`                  // "tour" or "enrollment"
	ProviderID  int64   `json:"providerId"`
	SubjectID   *int64  `json:"subjectId,omitempty"`   // child / family member
	SubjectName *string `json:"subjectName,omitempty"`
	Date        string  `json:"date,omitempty"`        // "2025-10-15"
	StartTime   string  `json:"startTime,omitempty"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64      `json:"id"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	ProviderID      int64      `json:"providerId"`
	RequesterID     int64      `json:"requesterId"`
	SubjectID       *int64     `json:"subjectId,omitempty"`
	SubjectName     *string    `json:"subjectName,omitempty"`
	ScheduledAt     *string    `json:"scheduledAt,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	Notes           *string    `json:"notes,omitempty"`
	SeriesID        *uuid.UUID `json:"seriesId,omitempty"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into a use case request.
// requesterID comes from the auth middleware, not the body.
func (r *CreateBookingRequest) ToUseCaseRequest(requesterID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		Type:        domain.BookingType(r.Type),
		ProviderID:  r.ProviderID,
		RequesterID: requesterID,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Notes:       r.Notes,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse converts a use case response into the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		Type:            resp.Type,
		Status:          resp.Status,
		ProviderID:      resp.ProviderID,
		RequesterID:     resp.RequesterID,
		SubjectID:       resp.SubjectID,
		SubjectName:     resp.SubjectName,
		DurationMinutes: resp.DurationMinutes,
		Notes:           resp.Notes,
		SeriesID:        resp.SeriesID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.ScheduledAt != nil {
		scheduled := resp.ScheduledAt.Format(time.RFC3339)
		out.ScheduledAt = &scheduled
	}
	return out
}
