package services

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/dto"
)

// TripReaderSvc defines read operations for trip data
type TripReaderSvc interface {
	// GetTripByID retrieves a trip by its ID.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves all trips.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// GetActiveTrip returns the active trip. When no trip is active but trips exist,
	// the most recently created one is activated and returned.
	GetActiveTrip(ctx context.Context, userID string) (*domain.Trip, error)

	// GetTripSummary aggregates the budget view of a trip from its stored expenses.
	GetTripSummary(ctx context.Context, tripID string) (*domain.TripSummary, error)
}

// TripWriterSvc defines write operations for trip data
type TripWriterSvc interface {
	// CreateTrip persists a new trip. The first trip ever created becomes active.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// UpdateTrip replaces the editable fields of a trip. Stored conversions are not recomputed.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, userID string) (*domain.Trip, error)

	// DeleteTrip removes a trip and its expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// SetActiveTrip makes tripID the single active trip.
	SetActiveTrip(ctx context.Context, tripID string, userID string) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
}
