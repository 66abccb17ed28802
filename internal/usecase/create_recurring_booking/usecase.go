package create_recurring_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/internal/usecase/create_booking"
)

// UseCase creates a series of bookings from a recurrence pattern.
// Each occurrence is booked independently through the single-booking use
// case, so a conflict on one date never rolls back the others.
type UseCase struct {
	creator BookingCreator
	logger  Logger
}

// NewUseCase creates the use case
func NewUseCase(creator BookingCreator, logger Logger) *UseCase {
	return &UseCase{
		creator: creator,
		logger:  logger,
	}
}

// Execute runs the use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringBooking: requester=%d, provider=%d, pattern=%s, range=%s..%s",
		req.RequesterID, req.ProviderID, req.Pattern,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRecurringBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Expand the pattern into concrete dates
	dates, err := domain.ExpandRecurrence(req.Pattern, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPattern):
			uc.logger.Warn("CreateRecurringBooking: unknown pattern %q", req.Pattern)
			return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, req.Pattern)
		case errors.Is(err, domain.ErrInvalidDateRange):
			uc.logger.Warn("CreateRecurringBooking: invalid date range")
			return nil, ErrInvalidDateRange
		default:
			return nil, fmt.Errorf("%w: failed to expand recurrence: %v", ErrInternal, err)
		}
	}

	// 3. One series ID links every occurrence
	seriesID := uuid.New()

	resp := &Response{SeriesID: seriesID}

	// 4. Book each date, skipping the ones that cannot be booked
	for _, date := range dates {
		occurrence := &create_booking.Request{
			Type:        req.Type,
			ProviderID:  req.ProviderID,
			RequesterID: req.RequesterID,
			SubjectID:   req.SubjectID,
			SubjectName: req.SubjectName,
			Date:        date,
			StartTime:   req.StartTime,
			Notes:       req.Notes,
			SeriesID:    &seriesID,
		}

		created, err := uc.creator.Execute(ctx, occurrence)
		if err != nil {
			reason, fatal := classifyError(err)
			if fatal {
				uc.logger.Error("CreateRecurringBooking: aborting series %s: %v", seriesID, err)
				return nil, err
			}
			uc.logger.Warn("CreateRecurringBooking: skipping %s: %v",
				date.Format(domain.DateFormat), err)
			resp.Skipped = append(resp.Skipped, SkippedOccurrence{Date: date, Reason: reason})
			continue
		}

		resp.Created = append(resp.Created, created)
	}

	uc.logger.Info("CreateRecurringBooking: series %s created=%d skipped=%d",
		seriesID, len(resp.Created), len(resp.Skipped))

	return resp, nil
}

// classifyError splits per-occurrence failures into skippable business
// outcomes and fatal ones. Provider lookup and storage failures abort the
// series, a taken slot or a closed day only skips that date.
func classifyError(err error) (reason string, fatal bool) {
	switch {
	case errors.Is(err, create_booking.ErrSlotConflict):
		return "slot conflicts with an existing booking", false
	case errors.Is(err, create_booking.ErrProviderClosed):
		return "provider is closed on this date", false
	case errors.Is(err, create_booking.ErrTooLateToBook):
		return "lead time requirement not met", false
	case errors.Is(err, create_booking.ErrInvalidDate):
		return "date is in the past", false
	case errors.Is(err, create_booking.ErrDateTooFarInFuture):
		return "date is beyond the booking horizon", false
	case errors.Is(err, create_booking.ErrOutsideOperatingHours):
		return "time is outside operating hours", false
	case errors.Is(err, create_booking.ErrProviderNotFound):
		return "", true
	default:
		return "", true
	}
}
