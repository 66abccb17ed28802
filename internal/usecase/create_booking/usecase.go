package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careslot/booking-service/internal/domain"
	policyRepo "github.com/careslot/booking-service/internal/infra/storage/policy"
	providerClient "github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/pkg/ptr"
)

// UseCase creates a booking request.
// Scheduled bookings go through a serializable transaction so two clients
// racing for the same slot cannot both commit.
type UseCase struct {
	bookingRepo    BookingRepository
	policyRepo     PolicyRepository
	providerClient ProviderServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	providerClient ProviderServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		policyRepo:     policyRepo,
		providerClient: providerClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute runs the use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%d, provider=%d, type=%s",
		req.RequesterID, req.ProviderID, req.Type)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time anchors the lead time and horizon checks
	now := uc.timeProvider.Now()

	// 3. Fetch the provider profile
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 4. Enrollment requests without a visit time skip the slot machinery
	if !req.Scheduled() {
		return uc.createUnscheduled(ctx, req)
	}

	schedule, err := provider.Schedule()
	if err != nil {
		uc.logger.Error("CreateBooking: provider id=%d has invalid schedule: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	var result *domain.Booking

	// 5. Run the slot checks and the insert in one serializable transaction.
	// The conflict check is repeated here at commit time: the availability
	// calendar the client saw may be stale.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Fetch the booking policy, falling back to defaults
		policy, err := uc.policyRepo.GetByProviderID(txCtx, req.ProviderID)
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("CreateBooking: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}
		if policy == nil {
			policy = domain.DefaultBookingPolicy(req.ProviderID)
			uc.logger.Info("CreateBooking: using default policy for provider=%d", req.ProviderID)
		}

		// 5.2. Date must be inside the booking horizon
		if err := validateDate(req.Date, now, policy.HorizonDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 5.3. Provider must operate on that weekday
		if !schedule.IsOpenOn(req.Date.Weekday()) {
			uc.logger.Warn("CreateBooking: provider id=%d is closed on %s",
				req.ProviderID, req.Date.Format(domain.DateFormat))
			return ErrProviderClosed
		}

		// 5.4. Visit must fit the operating window
		if err := validateOperatingHours(schedule, req); err != nil {
			uc.logger.Warn("CreateBooking: operating hours validation failed: %v", err)
			return err
		}

		scheduledAt, err := req.StartTime.On(req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve visit time: %v", ErrInternal, err)
		}

		// 5.5. Lead time requirement
		if !domain.IsLeadTimeSatisfied(scheduledAt, now, policy.LeadTime()) {
			uc.logger.Warn("CreateBooking: lead time violated, visit at %s", scheduledAt)
			return fmt.Errorf("%w: must book at least %d hours in advance",
				ErrTooLateToBook, policy.LeadTimeHours)
		}

		// 5.6. Lock the day's active bookings (FOR UPDATE) and re-check
		dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
		filter := domain.ProviderBookingsFilter{
			ProviderID:      req.ProviderID,
			From:            ptr.Ptr(dayStart),
			To:              ptr.Ptr(dayStart.AddDate(0, 0, 1)),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if domain.HasConflict(scheduledAt, policy.SlotDurationMinutes, bookings) {
			uc.logger.Warn("CreateBooking: slot %s is taken for provider=%d",
				scheduledAt, req.ProviderID)
			return ErrSlotConflict
		}

		// 5.7. Persist as pending, the provider confirms or declines later
		booking := &domain.Booking{
			Type:            req.Type,
			Status:          domain.StatusPending,
			ProviderID:      req.ProviderID,
			RequesterID:     req.RequesterID,
			SubjectID:       req.SubjectID,
			SubjectName:     req.SubjectName,
			ScheduledAt:     &scheduledAt,
			DurationMinutes: policy.SlotDurationMinutes,
			Notes:           req.Notes,
			SeriesID:        req.SeriesID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}

// createUnscheduled persists an enrollment request that has no visit time.
// No slot is claimed, so no conflict check or transaction is needed.
func (uc *UseCase) createUnscheduled(ctx context.Context, req *Request) (*Response, error) {
	booking := &domain.Booking{
		Type:            req.Type,
		Status:          domain.StatusPending,
		ProviderID:      req.ProviderID,
		RequesterID:     req.RequesterID,
		SubjectID:       req.SubjectID,
		SubjectName:     req.SubjectName,
		DurationMinutes: domain.DefaultSlotDurationMinutes,
		Notes:           req.Notes,
		SeriesID:        req.SeriesID,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create enrollment request: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created enrollment request id=%d", created.ID)

	return toResponse(created), nil
}
