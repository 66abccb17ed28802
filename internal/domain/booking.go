package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingType distinguishes one-off visits from long-term enrollment requests
type BookingType string

const (
	TypeTour       BookingType = "tour"
	TypeEnrollment BookingType = "enrollment"
)

// IsValid reports whether the type is one of the known booking types.
func (t BookingType) IsValid() bool {
	return t == TypeTour || t == TypeEnrollment
}

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a visit or enrollment request in the marketplace
type Booking struct {
	ID          int64
	Type        BookingType
	Status      BookingStatus
	ProviderID  int64
	RequesterID int64

	// SubjectID identifies the child / family member the visit is for.
	// Optional: a requester may book for themselves.
	SubjectID *int64

	// Denormalized for history, so provider views survive subject renames
	SubjectName *string

	// ScheduledAt is nil for enrollment requests that have not been given
	// a concrete visit time yet.
	ScheduledAt     *time.Time
	DurationMinutes int

	Notes *string

	// SeriesID links bookings created from one recurrence request
	SeriesID *uuid.UUID

	CancellationReason *string
	CancelledAt        *time.Time
	LateCancellation   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsTerminal reports whether the booking reached a final status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled ||
		b.Status == StatusCompleted ||
		b.Status == StatusNoShow
}

// IsScheduled reports whether the booking has a concrete visit time
func (b *Booking) IsScheduled() bool {
	return b.ScheduledAt != nil
}

// EffectiveDuration returns the booking duration, defaulting when unset
func (b *Booking) EffectiveDuration() time.Duration {
	minutes := b.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultSlotDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// ProviderBookingsFilter narrows provider booking queries
type ProviderBookingsFilter struct {
	ProviderID      int64          // required
	From            *time.Time     // scheduled_at lower bound (inclusive), optional
	To              *time.Time     // scheduled_at upper bound (exclusive), optional
	Status          *BookingStatus // optional
	IncludeInactive bool           // include cancelled and no-show bookings
}
