package create_recurring_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/usecase/create_booking"
	"github.com/careslot/booking-service/pkg/types"
)

// Request is a request to create a series of bookings
type Request struct {
	Type        domain.BookingType       // tour or enrollment
	ProviderID  int64                    // provider (daycare, clinic) ID
	RequesterID int64                    // client (parent, patient) ID
	SubjectID   *int64                   // person the bookings are for (optional)
	SubjectName *string                  // display name of the subject (optional)
	Pattern     domain.RecurrencePattern // weekly, biweekly or monthly
	StartDate   time.Time                // first occurrence date
	EndDate     time.Time                // last eligible date (inclusive)
	StartTime   types.TimeString         // visit start, same for every occurrence
	Notes       *string                  // free-form notes (optional)
}

// SkippedOccurrence explains why one date in the series was not booked
type SkippedOccurrence struct {
	Date   time.Time
	Reason string
}

// Response reports the outcome per occurrence. A series is created
// best-effort: conflicting or closed dates are skipped, not fatal.
type Response struct {
	SeriesID uuid.UUID
	Created  []*create_booking.Response
	Skipped  []SkippedOccurrence
}
