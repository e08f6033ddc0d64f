package repositories

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a trip by its unique identifier.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips, most recently created first.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// FindActiveTrip retrieves the trip flagged as active. Returns apperrors.ErrNotFound when none is.
	FindActiveTrip(ctx context.Context) (*domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip updates the editable fields of a trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip together with all of its expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// SetActiveTrip flags tripID as active and clears the flag on every other trip.
	SetActiveTrip(ctx context.Context, tripID string, updatedBy string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}
