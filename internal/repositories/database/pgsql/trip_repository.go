package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_budget_app/internal/models"
	"github.com/SscSPs/travel_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip data.
func newPgxTripRepository(pool *pgxpool.Pool) *PgxTripRepository {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

const fullTripSelectQuery = `
SELECT
	t.trip_id, t.name, t.primary_currency, t.budget_limit, t.is_active, t.start_date, t.end_date,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM trips t
`

// getTrips runs the full select with the given filter and collects the rows
func (r *PgxTripRepository) getTrips(ctx context.Context, filterQuery string, args ...any) ([]domain.Trip, error) {
	rows, err := r.Pool.Query(ctx, fullTripSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trips", err)
	}
	defer rows.Close()

	modelTrips, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trip rows", err)
	}
	return mapping.ToDomainTripSlice(modelTrips), nil
}

func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		INSERT INTO trips (
			trip_id, name, primary_currency, budget_limit, is_active, start_date, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TripID, m.Name, m.PrimaryCurrency, m.BudgetLimit, m.IsActive, m.StartDate, m.EndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "uq_trips_single_active" {
				return apperrors.NewConflictError("another trip is already active")
			}
			return apperrors.NewConflictError("trip ID " + trip.TripID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save trip "+trip.TripID, err)
	}
	return nil
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trips, err := r.getTrips(ctx, `WHERE t.trip_id = $1`, tripID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.NewNotFoundError("trip " + tripID + " not found")
	}
	return &trips[0], nil
}

func (r *PgxTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return r.getTrips(ctx, `ORDER BY t.created_at DESC, t.trip_id`)
}

func (r *PgxTripRepository) FindActiveTrip(ctx context.Context) (*domain.Trip, error) {
	trips, err := r.getTrips(ctx, `WHERE t.is_active LIMIT 1`)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.NewNotFoundError("no active trip")
	}
	return &trips[0], nil
}

func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips SET
			name = $2, primary_currency = $3, budget_limit = $4, start_date = $5, end_date = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE trip_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TripID, m.Name, m.PrimaryCurrency, m.BudgetLimit, m.StartDate, m.EndDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update trip "+trip.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + trip.TripID + " not found")
	}
	return nil
}

// DeleteTrip relies on ON DELETE CASCADE to remove the trip's expenses in the same statement.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete trip "+tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + tripID + " not found")
	}
	return nil
}

// SetActiveTrip clears the flag everywhere and sets it on tripID in one transaction,
// so readers never see zero or two active trips.
func (r *PgxTripRepository) SetActiveTrip(ctx context.Context, tripID string, updatedBy string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE trips SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
			WHERE is_active AND trip_id <> $1;`, tripID, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to clear active trip", err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE trips SET is_active = TRUE, last_updated_at = NOW(), last_updated_by = $2
			WHERE trip_id = $1;`, tripID, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to set active trip "+tripID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("trip " + tripID + " not found")
		}
		return nil
	})
}
