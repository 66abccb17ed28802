package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/pkg/dbmetrics"
	"github.com/careslot/booking-service/pkg/psqlbuilder"
)

// Repository persists per-provider booking policies
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a policy repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID fetches the stored policy for a provider.
// Callers fall back to domain.DefaultBookingPolicy on ErrPolicyNotFound.
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderBookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"slot_duration_minutes",
		"lead_time_hours",
		"horizon_days",
		"created_at",
		"updated_at",
	).
		From("provider_booking_policy").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ProviderBookingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ProviderID,
		&p.SlotDurationMinutes,
		&p.LeadTimeHours,
		&p.HorizonDays,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan policy: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert writes the provider's policy, inserting or updating in place.
func (r *Repository) Upsert(ctx context.Context, p *domain.ProviderBookingPolicy) (*domain.ProviderBookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_booking_policy").
		Columns(
			"provider_id",
			"slot_duration_minutes",
			"lead_time_hours",
			"horizon_days",
		).
		Values(
			p.ProviderID,
			p.SlotDurationMinutes,
			p.LeadTimeHours,
			p.HorizonDays,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			lead_time_hours = EXCLUDED.lead_time_hours,
			horizon_days = EXCLUDED.horizon_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}
