package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/careslot/booking-service/internal/domain"
	"github.com/careslot/booking-service/pkg/dbmetrics"
	"github.com/careslot/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"type",
	"status",
	"provider_id",
	"requester_id",
	"subject_id",
	"subject_name",
	"scheduled_at",
	"duration_minutes",
	"notes",
	"series_id",
	"cancellation_reason",
	"cancelled_at",
	"late_cancellation",
	"created_at",
	"updated_at",
}

// Repository persists bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and returns it with generated fields filled.
// Joins the transaction carried in ctx, if any; booking creation with a
// commit-time conflict check must run inside one.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"type",
			"status",
			"provider_id",
			"requester_id",
			"subject_id",
			"subject_name",
			"scheduled_at",
			"duration_minutes",
			"notes",
			"series_id",
		).
		Values(
			booking.Type,
			booking.Status,
			booking.ProviderID,
			booking.RequesterID,
			booking.SubjectID,
			booking.SubjectName,
			booking.ScheduledAt,
			booking.DurationMinutes,
			booking.Notes,
			nullUUID(booking.SeriesID),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches a booking by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByRequesterID lists a requester's bookings, newest first.
// Optionally filters by status.
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetBySeriesID lists all bookings in a recurrence series, earliest first.
func (r *Repository) GetBySeriesID(ctx context.Context, seriesID uuid.UUID) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"series_id": seriesID}).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeriesID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySeriesID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByProviderWithFilter lists a provider's bookings with optional window,
// status and inactive filters.
//
// When called inside a transaction with a bounded window, rows are locked
// with FOR UPDATE: this is the read the create-booking use case performs
// before its commit-time conflict check.
func (r *Repository) GetByProviderWithFilter(ctx context.Context, filter domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"provider_id": filter.ProviderID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"scheduled_at": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	bounded := filter.From != nil && filter.To != nil
	if bounded {
		selectBuilder = selectBuilder.OrderBy("scheduled_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("scheduled_at DESC NULLS LAST, created_at DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && bounded {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus moves a booking from expected status to a new one.
// The WHERE clause carries the expected status, so a concurrent transition
// makes this a no-op reported as ErrStatusChanged rather than a silent
// overwrite.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", next).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, id, query, args, "UpdateStatus")
}

// CancelFrom moves a booking from expected status to cancelled, recording
// the reason and the advisory late flag. Same conditional-write discipline
// as UpdateStatus.
func (r *Repository) CancelFrom(ctx context.Context, id int64, expected domain.BookingStatus, reason *string, late bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("late_cancellation", late).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelFrom - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, id, query, args, "CancelFrom")
}

// execConditional runs a conditional update and distinguishes "gone" from
// "status moved under us".
func (r *Repository) execConditional(ctx context.Context, executor DBExecutor, id int64, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Zero rows: either the booking is gone or its status no longer matches.
	var exists bool
	checkQuery, checkArgs, err := psqlbuilder.Select("TRUE").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build existence query: %v", ErrBuildQuery, op, err)
	}

	err = executor.QueryRowContext(ctx, checkQuery, checkArgs...).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %s - check existence: %v", ErrExecQuery, op, err)
	}

	return ErrStatusChanged
}

// scanner abstracts *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var seriesID uuid.NullUUID
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Type,
		&booking.Status,
		&booking.ProviderID,
		&booking.RequesterID,
		&booking.SubjectID,
		&booking.SubjectName,
		&booking.ScheduledAt,
		&booking.DurationMinutes,
		&booking.Notes,
		&seriesID,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.LateCancellation,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if seriesID.Valid {
		booking.SeriesID = &seriesID.UUID
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
