package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careslot/booking-service/internal/domain"
	policyRepo "github.com/careslot/booking-service/internal/infra/storage/policy"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/pkg/ptr"
	"github.com/careslot/booking-service/pkg/types"
)

// Test fakes

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   []*domain.Booking
	nextID    int64
	createErr error
	listErr   error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	out := *booking
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

type fakePolicyRepo struct {
	policy *domain.ProviderBookingPolicy
}

func (f *fakePolicyRepo) GetByProviderID(_ context.Context, providerID int64) (*domain.ProviderBookingPolicy, error) {
	if f.policy == nil {
		return nil, policyRepo.ErrPolicyNotFound
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		StaffIDs:      []int64{100},
	}
}

func newTestUseCase(repo *fakeBookingRepo, policy *domain.ProviderBookingPolicy, client *fakeProviderClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakePolicyRepo{policy: policy}, client, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func tourRequest(date time.Time, startTime string) *Request {
	return &Request{
		Type:        domain.TypeTour,
		ProviderID:  10,
		RequesterID: 20,
		SubjectName: ptr.Ptr("Alex"),
		Date:        date,
		StartTime:   types.TimeString(startTime),
	}
}

func TestExecute_CreatesPendingTour(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	resp, err := uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), "10:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.TypeTour), resp.Type)
	require.NotNil(t, resp.ScheduledAt)
	assert.Equal(t, time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC), *resp.ScheduledAt)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)

	require.Len(t, repo.created, 1)
}

func TestExecute_CommitTimeConflict(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	visit := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)

	// Another client already holds the slot; the calendar the caller saw
	// was stale and the in-transaction re-check must catch it.
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			Status:          domain.StatusConfirmed,
			ScheduledAt:     ptr.Ptr(visit),
			DurationMinutes: 30,
		}},
	}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	_, err := uc.Execute(context.Background(), tourRequest(visit, "10:15"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, repo.created)

	// Back-to-back with the existing booking is fine
	_, err = uc.Execute(context.Background(), tourRequest(visit, "10:30"))
	assert.NoError(t, err)
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	// Same day, two hours out: violates the default 24h lead time
	_, err := uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	// 2025-01-12 is a Sunday
	_, err := uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrProviderClosed)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, nil, &fakeProviderClient{provider: weekdayProvider()}, now)
	date := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	// Before opening
	_, err := uc.Execute(context.Background(), tourRequest(date, "06:30"))
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// Less than an hour before closing
	_, err = uc.Execute(context.Background(), tourRequest(date, "17:30"))
	assert.ErrorIs(t, err, ErrOutsideOperatingHours)

	// The latest permitted start
	_, err = uc.Execute(context.Background(), tourRequest(date, "17:00"))
	assert.NoError(t, err)
}

func TestExecute_HorizonEnforced(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	policy := &domain.ProviderBookingPolicy{
		ProviderID:          10,
		SlotDurationMinutes: 30,
		LeadTimeHours:       24,
		HorizonDays:         7,
	}
	uc := newTestUseCase(&fakeBookingRepo{}, policy, &fakeProviderClient{provider: weekdayProvider()}, now)

	// Ten days out with a seven-day horizon
	_, err := uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// In the past
	_, err = uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	client := &fakeProviderClient{err: providerservice.ErrProviderNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, nil, client, now)

	_, err := uc.Execute(context.Background(), tourRequest(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_UnscheduledEnrollmentSkipsSlotChecks(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, nil, &fakeProviderClient{provider: weekdayProvider()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Type:        domain.TypeEnrollment,
		ProviderID:  10,
		RequesterID: 20,
		SubjectName: ptr.Ptr("Alex"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.ScheduledAt)
	require.Len(t, repo.created, 1)
}

func TestExecute_Validation(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, nil, &fakeProviderClient{provider: weekdayProvider()}, now)
	date := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing requester", &Request{Type: domain.TypeTour, ProviderID: 10, Date: date, StartTime: "10:00"}},
		{"missing provider", &Request{Type: domain.TypeTour, RequesterID: 20, Date: date, StartTime: "10:00"}},
		{"unknown type", &Request{Type: "walk-in", ProviderID: 10, RequesterID: 20, Date: date, StartTime: "10:00"}},
		{"tour without date", &Request{Type: domain.TypeTour, ProviderID: 10, RequesterID: 20, StartTime: "10:00"}},
		{"tour without time", &Request{Type: domain.TypeTour, ProviderID: 10, RequesterID: 20, Date: date}},
		{"malformed time", &Request{Type: domain.TypeTour, ProviderID: 10, RequesterID: 20, Date: date, StartTime: "9am"}},
		{"date without time", &Request{Type: domain.TypeEnrollment, ProviderID: 10, RequesterID: 20, Date: date}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
