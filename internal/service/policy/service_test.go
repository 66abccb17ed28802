package policy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careslot/booking-service/internal/domain"
	storagePolicy "github.com/careslot/booking-service/internal/infra/storage/policy"
	"github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/internal/service/policy/models"
)

type fakePolicyRepo struct {
	policy   *domain.ProviderBookingPolicy
	upserted *domain.ProviderBookingPolicy
}

func (f *fakePolicyRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderBookingPolicy, error) {
	if f.policy == nil {
		return nil, storagePolicy.ErrPolicyNotFound
	}
	return f.policy, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, policy *domain.ProviderBookingPolicy) (*domain.ProviderBookingPolicy, error) {
	f.upserted = policy
	out := *policy
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func staffedProvider() *providerservice.Provider {
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

func TestGet_StoredPolicy(t *testing.T) {
	stored := &domain.ProviderBookingPolicy{
		ProviderID:          10,
		SlotDurationMinutes: 45,
		LeadTimeHours:       48,
		HorizonDays:         30,
		CreatedAt:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	svc := NewService(&fakePolicyRepo{policy: stored}, &fakeProviderClient{provider: staffedProvider()}, nopLogger{})

	resp, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.Equal(t, 48, resp.LeadTimeHours)
	assert.Equal(t, 30, resp.HorizonDays)
	assert.False(t, resp.IsDefault)
	require.NotNil(t, resp.CreatedAt)
}

func TestGet_DefaultsWhenNoneStored(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeProviderClient{provider: staffedProvider()}, nopLogger{})

	resp, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultLeadTimeHours, resp.LeadTimeHours)
	assert.Equal(t, domain.DefaultHorizonDays, resp.HorizonDays)
	assert.Nil(t, resp.CreatedAt)
}

func TestGet_ProviderNotFound(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeProviderClient{err: providerservice.ErrProviderNotFound}, nopLogger{})

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestUpdate_ByStaff(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := NewService(repo, &fakeProviderClient{provider: staffedProvider()}, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdatePolicyRequest{
		UserID:              100,
		ProviderID:          10,
		SlotDurationMinutes: 60,
		LeadTimeHours:       12,
		HorizonDays:         21,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.False(t, resp.IsDefault)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(10), repo.upserted.ProviderID)
}

func TestUpdate_NonStaffDenied(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := NewService(repo, &fakeProviderClient{provider: staffedProvider()}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdatePolicyRequest{
		UserID:              20,
		ProviderID:          10,
		SlotDurationMinutes: 60,
		LeadTimeHours:       12,
		HorizonDays:         21,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.upserted)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeProviderClient{provider: staffedProvider()}, nopLogger{})

	tests := []struct {
		name string
		req  models.UpdatePolicyRequest
	}{
		{"slot too short", models.UpdatePolicyRequest{UserID: 100, ProviderID: 10, SlotDurationMinutes: 1, LeadTimeHours: 24, HorizonDays: 14}},
		{"slot too long", models.UpdatePolicyRequest{UserID: 100, ProviderID: 10, SlotDurationMinutes: 600, LeadTimeHours: 24, HorizonDays: 14}},
		{"negative lead time", models.UpdatePolicyRequest{UserID: 100, ProviderID: 10, SlotDurationMinutes: 30, LeadTimeHours: -1, HorizonDays: 14}},
		{"horizon too long", models.UpdatePolicyRequest{UserID: 100, ProviderID: 10, SlotDurationMinutes: 30, LeadTimeHours: 24, HorizonDays: 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
