package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careslot/booking-service/internal/domain"
	storagePolicy "github.com/careslot/booking-service/internal/infra/storage/policy"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.ProviderBookingsFilter
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakePolicyRepo struct {
	policy *domain.ProviderBookingPolicy
}

func (f *fakePolicyRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderBookingPolicy, error) {
	if f.policy == nil {
		return nil, storagePolicy.ErrPolicyNotFound
	}
	return f.policy, nil
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

func weekdayProvider() *providerservice.Provider {
	return &providerservice.Provider{
		ID:            10,
		Name:          "Sunny Days Daycare",
		Kind:          "daycare",
		OpeningTime:   "07:00",
		ClosingTime:   "18:00",
		OperatingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

func newTestUseCase(repo *fakeBookingRepo, policy *domain.ProviderBookingPolicy, client *fakeProviderClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakePolicyRepo{policy: policy}, client, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func TestExecute_DefaultPolicyFallback(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // Monday
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	require.Len(t, resp.Days, domain.DefaultHorizonDays)

	// Monday opens at 07:00 and the last start is 17:00
	monday := resp.Days[0]
	assert.True(t, monday.IsOpen)
	require.Len(t, monday.Slots, 21)
	assert.Equal(t, "07:00", string(monday.Slots[0].Time))
	assert.Equal(t, "17:00", string(monday.Slots[20].Time))

	// The booking fetch covered exactly the generated horizon
	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, now, *repo.lastFilter.From)
	assert.Equal(t, now.AddDate(0, 0, domain.DefaultHorizonDays), *repo.lastFilter.To)
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestExecute_DaysAheadClampedToPolicy(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	policy := &domain.ProviderBookingPolicy{
		ProviderID:          10,
		SlotDurationMinutes: 60,
		LeadTimeHours:       24,
		HorizonDays:         7,
	}

	tests := []struct {
		name      string
		daysAhead int
		wantDays  int
	}{
		{"unset uses policy horizon", 0, 7},
		{"shorter than horizon", 3, 3},
		{"longer than horizon is clamped", 30, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, policy, &fakeProviderClient{provider: weekdayProvider()}, now)
			resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, DaysAhead: tt.daysAhead})
			require.NoError(t, err)
			assert.Len(t, resp.Days, tt.wantDays)
			assert.Equal(t, 60, resp.SlotDurationMinutes)
		})
	}
}

func TestExecute_BookedSlotUnavailable(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	visit := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC) // Wednesday 10:00
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{{
			Status:          domain.StatusConfirmed,
			ScheduledAt:     ptr.Ptr(visit),
			DurationMinutes: 30,
		}},
	}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 10, DaysAhead: 3})
	require.NoError(t, err)

	wednesday := resp.Days[2]
	bySlot := make(map[string]bool, len(wednesday.Slots))
	for _, s := range wednesday.Slots {
		bySlot[string(s.Time)] = s.Available
	}
	assert.False(t, bySlot["10:00"])
	assert.True(t, bySlot["09:30"])
	assert.True(t, bySlot["10:30"])
}

func TestExecute_ProviderNotFound(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	client := &fakeProviderClient{err: providerservice.ErrProviderNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, nil, client, now)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 99})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_InvalidSchedule(t *testing.T) {
	now := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	provider := weekdayProvider()
	provider.OpeningTime = "late"
	uc := newTestUseCase(&fakeBookingRepo{}, nil, &fakeProviderClient{provider: provider}, now)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 10})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestExecute_InvalidProviderID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, nil, &fakeProviderClient{provider: weekdayProvider()}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
