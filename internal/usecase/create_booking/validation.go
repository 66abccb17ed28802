package create_booking

import (
	"fmt"
	"time"

	"github.com/careslot/booking-service/internal/domain"
)

// validateRequest validates request input
func validateRequest(req *Request) error {
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	if req.SubjectID != nil && *req.SubjectID <= 0 {
		return fmt.Errorf("%w: subjectID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Tours are visits, they always carry a concrete time. Enrollments may
	// be requested without one and scheduled later.
	if req.Type == domain.TypeTour {
		if req.Date.IsZero() {
			return fmt.Errorf("%w: date is required for a tour", ErrInvalidInput)
		}
		if req.StartTime.IsZero() {
			return fmt.Errorf("%w: startTime is required for a tour", ErrInvalidInput)
		}
	}

	// Date and time come as a pair
	if req.Date.IsZero() != req.StartTime.IsZero() {
		return fmt.Errorf("%w: date and startTime must be provided together", ErrInvalidInput)
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateDate checks that the date is bookable
func validateDate(bookingDate time.Time, now time.Time, horizonDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	if horizonDays <= 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, horizonDays)

	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}

// validateOperatingHours checks that the visit fits the provider's window.
// The visit must start at or after opening and leave at least MinVisitReserve
// before closing.
func validateOperatingHours(schedule domain.ProviderSchedule, req *Request) error {
	if req.StartTime.IsBefore(schedule.OpeningTime) {
		return fmt.Errorf("%w: before opening time %s", ErrOutsideOperatingHours, schedule.OpeningTime)
	}

	latestEnd, err := req.StartTime.AddMinutes(int(domain.MinVisitReserve.Minutes()))
	if err != nil {
		return fmt.Errorf("%w: past end of day", ErrOutsideOperatingHours)
	}
	if latestEnd.IsAfter(schedule.ClosingTime) {
		return fmt.Errorf("%w: after latest start for closing time %s", ErrOutsideOperatingHours, schedule.ClosingTime)
	}

	return nil
}

// isDateInPast checks that the date is before today (time of day ignored)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
