package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careslot/booking-service/internal/domain"
	bookingRepo "github.com/careslot/booking-service/internal/infra/storage/booking"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/internal/service/bookings/models"
	"github.com/careslot/booking-service/pkg/ptr"
)

const (
	providerID  = int64(10)
	requesterID = int64(20)
	staffID     = int64(100)
	strangerID  = int64(999)
)

// Test fakes

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	getErr    error
	updateErr error
	cancelErr error

	updated   bool
	cancelled bool

	// captured conditional-write arguments
	expectedFrom domain.BookingStatus
	nextStatus   domain.BookingStatus
	cancelReason *string
	cancelLate   bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := *f.booking
	return &out, nil
}

func (f *fakeBookingRepo) GetByRequesterID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, expected, next domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	f.expectedFrom = expected
	f.nextStatus = next
	return nil
}

func (f *fakeBookingRepo) CancelFrom(_ context.Context, _ int64, expected domain.BookingStatus, reason *string, late bool) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	f.expectedFrom = expected
	f.cancelReason = reason
	f.cancelLate = late
	return nil
}

type fakeProviderClient struct {
	provider *providerservice.Provider
	err      error
}

func (f *fakeProviderClient) GetProvider(_ context.Context, _ int64) (*providerservice.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.provider, nil
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func staffedProvider() *providerservice.Provider {
	return &providerservice.Provider{
		ID:            providerID,
		Name:          "Sunny Days Daycare",
		Kind:          "daycare",
		OpeningTime:   "07:00",
		ClosingTime:   "18:00",
		OperatingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StaffIDs:      []int64{staffID},
	}
}

func tourBooking(status domain.BookingStatus, scheduledAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		Type:            domain.TypeTour,
		Status:          status,
		ProviderID:      providerID,
		RequesterID:     requesterID,
		ScheduledAt:     ptr.Ptr(scheduledAt),
		DurationMinutes: 30,
	}
}

func newTestService(repo *fakeBookingRepo, client *fakeProviderClient, now time.Time) *Service {
	svc := NewService(repo, client, nopLogger{})
	svc.timeProvider = &fakeClock{now: now}
	return svc
}

func TestTransition_ConfirmByStaff(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusPending, now.AddDate(0, 0, 2))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	resp, err := svc.Transition(context.Background(), 1, domain.ActionConfirm, &models.TransitionRequest{UserID: staffID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.True(t, repo.updated)
	assert.Equal(t, domain.StatusPending, repo.expectedFrom)
	assert.Equal(t, domain.StatusConfirmed, repo.nextStatus)
}

func TestTransition_ConfirmByRequesterDenied(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusPending, now.AddDate(0, 0, 2))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	for _, action := range []domain.Action{domain.ActionConfirm, domain.ActionComplete, domain.ActionNoShow} {
		_, err := svc.Transition(context.Background(), 1, action, &models.TransitionRequest{UserID: requesterID})
		assert.ErrorIs(t, err, ErrAccessDenied, "action %s", action)
	}
	assert.False(t, repo.updated)
}

func TestTransition_CancelByRequester(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	// Visit three days out: plenty of notice
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusConfirmed, now.AddDate(0, 0, 3))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	reason := ptr.Ptr("schedule changed")
	resp, err := svc.Transition(context.Background(), 1, domain.ActionCancel, &models.TransitionRequest{UserID: requesterID, Reason: reason})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.False(t, resp.LateCancellation)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, now, *resp.CancelledAt)
	assert.Equal(t, reason, resp.CancellationReason)

	assert.True(t, repo.cancelled)
	assert.False(t, repo.updated)
	assert.Equal(t, domain.StatusConfirmed, repo.expectedFrom)
	assert.False(t, repo.cancelLate)
}

func TestTransition_LateCancellationFlagged(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	// Visit two hours out: well inside the 24h notice window
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusConfirmed, now.Add(2*time.Hour))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	resp, err := svc.Transition(context.Background(), 1, domain.ActionCancel, &models.TransitionRequest{UserID: requesterID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.True(t, resp.LateCancellation)
	assert.True(t, repo.cancelLate)
}

func TestTransition_CancelByStranger(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusConfirmed, now.AddDate(0, 0, 3))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	_, err := svc.Transition(context.Background(), 1, domain.ActionCancel, &models.TransitionRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestTransition_InvalidFromStatus(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusCancelled, now.AddDate(0, 0, 3))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	_, err := svc.Transition(context.Background(), 1, domain.ActionConfirm, &models.TransitionRequest{UserID: staffID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, repo.updated)
}

func TestTransition_ConcurrentStatusChange(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		booking:   tourBooking(domain.StatusPending, now.AddDate(0, 0, 2)),
		updateErr: bookingRepo.ErrStatusChanged,
	}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	_, err := svc.Transition(context.Background(), 1, domain.ActionConfirm, &models.TransitionRequest{UserID: staffID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_ReasonTooLong(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusConfirmed, now.AddDate(0, 0, 3))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Transition(context.Background(), 1, domain.ActionCancel, &models.TransitionRequest{UserID: requesterID, Reason: ptr.Ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_BookingNotFound(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	_, err := svc.Transition(context.Background(), 1, domain.ActionConfirm, &models.TransitionRequest{UserID: staffID})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_Access(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{booking: tourBooking(domain.StatusPending, now.AddDate(0, 0, 2))}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{"requester", requesterID, nil},
		{"staff", staffID, nil},
		{"stranger", strangerID, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetByID(context.Background(), 1, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		})
	}
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeProviderClient{provider: staffedProvider()}, time.Now())

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: requesterID,
		Status:   ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClientBookings_ReturnsList(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{list: []*domain.Booking{
		tourBooking(domain.StatusPending, now.AddDate(0, 0, 1)),
		tourBooking(domain.StatusConfirmed, now.AddDate(0, 0, 2)),
	}}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: requesterID})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetProviderBookings_StaffOnly(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{list: []*domain.Booking{tourBooking(domain.StatusConfirmed, now.AddDate(0, 0, 1))}}
	svc := newTestService(repo, &fakeProviderClient{provider: staffedProvider()}, now)

	_, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		UserID:     requesterID,
		ProviderID: providerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		UserID:     staffID,
		ProviderID: providerID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetProviderBookings_ProviderNotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeProviderClient{err: providerservice.ErrProviderNotFound}, time.Now())

	_, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		UserID:     staffID,
		ProviderID: providerID,
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
