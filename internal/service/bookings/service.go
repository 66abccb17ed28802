package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/careslot/booking-service/internal/domain"
	bookingRepo "github.com/careslot/booking-service/internal/infra/storage/booking"
	providerClient "github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/internal/service/bookings/models"
)

// Service handles booking reads and lifecycle transitions
type Service struct {
	bookingRepo    BookingRepository
	providerClient ProviderServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService creates the bookings service
func NewService(
	bookingRepo BookingRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		providerClient: providerClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetByID fetches a booking by ID.
// Visible to the requester who created it and to the provider's staff.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings fetches a client's booking history, optionally filtered
// by status. The caller must be the client themselves, which the transport
// layer enforces before calling here.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByRequesterID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetProviderBookings fetches a provider's bookings with filtering by
// period and status. Staff only.
func (s *Service) GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProviderBookings: fetching bookings for provider=%d, user=%d", req.ProviderID, req.UserID)

	if err := s.checkStaffAccess(ctx, req.ProviderID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderBookings: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderBookings: successfully fetched %d bookings for provider=%d", len(bookings), req.ProviderID)
	return models.FromDomainBookingList(bookings), nil
}

// Transition applies a lifecycle action to a booking.
// Confirm, complete and no-show are staff actions. Decline and cancel are
// open to the requester and to staff.
//
// The status write is conditional on the status the action was computed
// from, so two concurrent transitions cannot both apply.
func (s *Service) Transition(ctx context.Context, bookingID int64, action domain.Action, req *models.TransitionRequest) (*models.BookingResponse, error) {
	s.logger.Info("Transition: booking id=%d, action=%s, user=%d", bookingID, action, req.UserID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, bookingID, "Transition")
	if err != nil {
		return nil, err
	}

	if err := s.checkActionAccess(ctx, booking, action, req.UserID); err != nil {
		s.logger.Warn("Transition: access denied for user=%d, action=%s, booking id=%d", req.UserID, action, bookingID)
		return nil, err
	}

	now := s.timeProvider.Now()

	tr, err := domain.ApplyTransition(booking, action, req.Reason, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			s.logger.Warn("Transition: invalid action=%s for booking id=%d in status=%s", action, bookingID, booking.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		return nil, fmt.Errorf("%w: Transition - %v", ErrInternal, err)
	}

	if tr.To == domain.StatusCancelled {
		err = s.bookingRepo.CancelFrom(ctx, bookingID, tr.From, tr.Reason, tr.LateCancellation)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, tr.From, tr.To)
	}
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Transition: booking id=%d disappeared during update", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusChanged):
			// Someone else transitioned the booking between our read and
			// write. The action is no longer valid for the new status.
			s.logger.Warn("Transition: booking id=%d changed status concurrently", bookingID)
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("Transition: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	booking.Status = tr.To
	booking.UpdatedAt = now
	if tr.To == domain.StatusCancelled {
		booking.CancellationReason = tr.Reason
		booking.CancelledAt = &now
		booking.LateCancellation = tr.LateCancellation
	}

	s.logger.Info("Transition: booking id=%d moved %s -> %s", bookingID, tr.From, tr.To)
	return models.FromDomainBooking(booking), nil
}

// Helpers

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkReadAccess allows the requester and the provider's staff
func (s *Service) checkReadAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.RequesterID == userID {
		return nil
	}
	if err := s.checkStaffAccess(ctx, booking.ProviderID, userID); err != nil {
		return ErrAccessDenied
	}
	return nil
}

// checkActionAccess enforces per-action permissions
func (s *Service) checkActionAccess(ctx context.Context, booking *domain.Booking, action domain.Action, userID int64) error {
	switch action {
	case domain.ActionConfirm, domain.ActionComplete, domain.ActionNoShow:
		return s.checkStaffAccess(ctx, booking.ProviderID, userID)
	case domain.ActionDecline, domain.ActionCancel:
		return s.checkReadAccess(ctx, booking, userID)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
}

// checkStaffAccess verifies that the user is on the provider's staff list
func (s *Service) checkStaffAccess(ctx context.Context, providerID int64, userID int64) error {
	provider, err := s.providerClient.GetProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("checkStaffAccess: provider id=%d not found", providerID)
			return ErrProviderNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get provider id=%d: %v", providerID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get provider: %v", ErrInternal, err)
	}

	if provider.IsStaff(userID) {
		return nil
	}

	s.logger.Warn("checkStaffAccess: user=%d is not staff of provider=%d", userID, providerID)
	return ErrAccessDenied
}
