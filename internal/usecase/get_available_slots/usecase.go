package get_available_slots

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

// UseCase computes a provider's bookable calendar.
// Read-only and stale-tolerant: the result is a snapshot for display, the
// authoritative conflict check happens again at booking commit time.
type UseCase struct {
	bookingRepo    BookingRepository
	policyRepo     PolicyRepository
	providerClient ProviderServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		policyRepo:     policyRepo,
		providerClient: providerClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute runs the use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, daysAhead=%d", req.ProviderID, req.DaysAhead)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time anchors the calendar and the lead-time rule
	now := uc.timeProvider.Now()

	// 3. Fetch the provider profile
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	schedule, err := provider.Schedule()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: provider id=%d has invalid schedule: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 4. Fetch the booking policy, falling back to defaults
	policy, err := uc.policyRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}
	if policy == nil {
		policy = domain.DefaultBookingPolicy(req.ProviderID)
		uc.logger.Info("GetAvailableSlots: using default policy for provider=%d", req.ProviderID)
	}

	opts := policy.AvailabilityOptions()
	if req.DaysAhead > 0 && req.DaysAhead < opts.DaysAhead {
		opts.DaysAhead = req.DaysAhead
	}

	// 5. Fetch active bookings covering the horizon
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	filter := domain.ProviderBookingsFilter{
		ProviderID:      req.ProviderID,
		From:            ptr.Ptr(today),
		To:              ptr.Ptr(today.AddDate(0, 0, opts.DaysAhead)),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Generate the calendar
	days := domain.GenerateAvailability(schedule, bookings, opts, now)

	uc.logger.Info("GetAvailableSlots: generated %d days for provider=%d", len(days), req.ProviderID)

	return &Response{
		ProviderID:          req.ProviderID,
		SlotDurationMinutes: opts.SlotDurationMinutes,
		Days:                days,
	}, nil
}
