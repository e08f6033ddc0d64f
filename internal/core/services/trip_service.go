package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/google/uuid"
)

// tripService implements the TripSvcFacade interface
type tripService struct {
	BaseService
	tripRepo    portsrepo.TripRepositoryFacade
	expenseRepo portsrepo.ExpenseReader
	now         func() time.Time
}

// TripServiceOption is a functional option for configuring the trip service
type TripServiceOption func(*tripService)

// WithTripClock overrides the time source used for audit fields.
func WithTripClock(now func() time.Time) TripServiceOption {
	return func(s *tripService) {
		s.now = now
	}
}

// NewTripService creates a new trip service with the provided dependencies
func NewTripService(tripRepo portsrepo.TripRepositoryFacade, expenseRepo portsrepo.ExpenseReader, options ...TripServiceOption) portssvc.TripSvcFacade {
	svc := &tripService{
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

// GetTripByID retrieves a trip by its ID
func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trip by ID", slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// ListTrips retrieves all trips
func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips")
		return nil, err
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}

	s.LogDebug(ctx, "Trips listed successfully", slog.Int("count", len(trips)))
	return trips, nil
}

// GetActiveTrip returns the active trip, activating the first listed trip when none is
func (s *tripService) GetActiveTrip(ctx context.Context, userID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindActiveTrip(ctx)
	if err == nil {
		return trip, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find active trip")
		return nil, err
	}

	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips for auto activation")
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.NewNotFoundError("no trips exist")
	}

	s.LogInfo(ctx, "No active trip, activating first trip", slog.String("trip_id", trips[0].TripID))
	return s.SetActiveTrip(ctx, trips[0].TripID, userID)
}

// GetTripSummary aggregates the frozen expense amounts of a trip
func (s *tripService) GetTripSummary(ctx context.Context, tripID string) (*domain.TripSummary, error) {
	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByTripID(ctx, tripID, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for summary", slog.String("trip_id", tripID))
		return nil, err
	}

	summary := domain.Summarize(*trip, expenses)
	return &summary, nil
}

// CreateTrip persists a new trip
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	now := s.now()
	trip := domain.Trip{
		TripID:          uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		PrimaryCurrency: domain.CurrencyCode(req.PrimaryCurrency),
		BudgetLimit:     req.BudgetLimit,
		StartDate:       dto.FromUnixNanoPtr(req.StartDate),
		EndDate:         dto.FromUnixNanoPtr(req.EndDate),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	_, err := s.tripRepo.FindActiveTrip(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		trip.IsActive = true
	case err != nil:
		s.LogError(ctx, err, "Failed to check active trip")
		return nil, err
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip", slog.String("trip_id", trip.TripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip created successfully",
		slog.String("trip_id", trip.TripID),
		slog.Bool("is_active", trip.IsActive))
	return &trip, nil
}

// UpdateTrip replaces the editable fields of a trip. The primary currency is locked once
// the trip has expenses, since their frozen amounts are denominated in it.
func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, userID string) (*domain.Trip, error) {
	trip, err := s.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	newCurrency := domain.CurrencyCode(req.PrimaryCurrency)
	if newCurrency != trip.PrimaryCurrency {
		existing, err := s.expenseRepo.ListExpensesByTripID(ctx, tripID, 1)
		if err != nil {
			s.LogError(ctx, err, "Failed to check trip expenses", slog.String("trip_id", tripID))
			return nil, err
		}
		if len(existing) > 0 {
			return nil, apperrors.NewValidationError("primary currency cannot change once the trip has expenses")
		}
	}

	trip.Name = strings.TrimSpace(req.Name)
	trip.PrimaryCurrency = newCurrency
	trip.BudgetLimit = req.BudgetLimit
	trip.StartDate = dto.FromUnixNanoPtr(req.StartDate)
	trip.EndDate = dto.FromUnixNanoPtr(req.EndDate)
	trip.LastUpdatedAt = s.now()
	trip.LastUpdatedBy = userID

	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		s.LogError(ctx, err, "Failed to update trip", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip updated successfully", slog.String("trip_id", tripID))
	return trip, nil
}

// DeleteTrip removes a trip and, through the repository, all of its expenses
func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete trip", slog.String("trip_id", tripID))
		}
		return err
	}

	s.LogInfo(ctx, "Trip deleted successfully", slog.String("trip_id", tripID))
	return nil
}

// SetActiveTrip makes tripID the only active trip
func (s *tripService) SetActiveTrip(ctx context.Context, tripID string, userID string) (*domain.Trip, error) {
	if err := s.tripRepo.SetActiveTrip(ctx, tripID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set active trip", slog.String("trip_id", tripID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Active trip changed", slog.String("trip_id", tripID))
	return s.GetTripByID(ctx, tripID)
}
