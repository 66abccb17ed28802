package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unrecognized status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// TransitionRequest asks to move a booking through its lifecycle
type TransitionRequest struct {
	UserID int64   `json:"userId"`
	Reason *string `json:"reason,omitempty"`
}

// GetClientBookingsRequest fetches a client's booking history
type GetClientBookingsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetProviderBookingsRequest fetches a provider's bookings with filtering
type GetProviderBookingsRequest struct {
	UserID          int64      `json:"userId"`
	ProviderID      int64      `json:"providerId"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *GetProviderBookingsRequest) ToDomainFilter() (domain.ProviderBookingsFilter, error) {
	filter := domain.ProviderBookingsFilter{
		ProviderID:      r.ProviderID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is a booking as exposed by the service layer
type BookingResponse struct {
	ID                 int64      `json:"id"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	ProviderID         int64      `json:"providerId"`
	RequesterID        int64      `json:"requesterId"`
	SubjectID          *int64     `json:"subjectId,omitempty"`
	SubjectName        *string    `json:"subjectName,omitempty"`
	ScheduledAt        *time.Time `json:"scheduledAt,omitempty"`
	DurationMinutes    int        `json:"durationMinutes"`
	Notes              *string    `json:"notes,omitempty"`
	SeriesID           *uuid.UUID `json:"seriesId,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	LateCancellation   bool       `json:"lateCancellation"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking converts a domain booking into a response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Type:               string(b.Type),
		Status:             string(b.Status),
		ProviderID:         b.ProviderID,
		RequesterID:        b.RequesterID,
		SubjectID:          b.SubjectID,
		SubjectName:        b.SubjectName,
		ScheduledAt:        b.ScheduledAt,
		DurationMinutes:    b.DurationMinutes,
		Notes:              b.Notes,
		SeriesID:           b.SeriesID,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		LateCancellation:   b.LateCancellation,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings into a response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}

// ToDomainBookingStatus parses a status string
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled,
		domain.StatusCompleted, domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
