package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/pkg/types"
)

// Request is a request to create a booking
type Request struct {
	Type        domain.BookingType // tour or enrollment
	ProviderID  int64              // provider (daycare, clinic) ID
	RequesterID int64              // client (parent, patient) ID
	SubjectID   *int64             // person the booking is for (optional)
	SubjectName *string            // display name of the subject (optional)
	Date        time.Time          // visit date, required for tours
	StartTime   types.TimeString   // visit start, e.g. "10:00", required for tours
	Notes       *string            // free-form notes (optional)
	SeriesID    *uuid.UUID         // recurring series marker, set internally
}

// Scheduled reports whether the request carries a concrete visit time
func (r *Request) Scheduled() bool {
	return !r.Date.IsZero() && !r.StartTime.IsZero()
}

// Response is the created booking
type Response struct {
	ID              int64
	Type            string
	Status          string
	ProviderID      int64
	RequesterID     int64
	SubjectID       *int64
	SubjectName     *string
	ScheduledAt     *time.Time
	DurationMinutes int
	Notes           *string
	SeriesID        *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		Type:            string(b.Type),
		Status:          string(b.Status),
		ProviderID:      b.ProviderID,
		RequesterID:     b.RequesterID,
		SubjectID:       b.SubjectID,
		SubjectName:     b.SubjectName,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
		SeriesID:        b.SeriesID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
