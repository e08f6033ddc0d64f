package dto

import (
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the data needed to create a trip.
type CreateTripRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	PrimaryCurrency string          `json:"primaryCurrency" binding:"required,currency"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit"`
	StartDate       *int64          `json:"startDate,omitempty"` // epoch ns
	EndDate         *int64          `json:"endDate,omitempty"`   // epoch ns
}

// UpdateTripRequest replaces the editable fields of a trip.
type UpdateTripRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	PrimaryCurrency string          `json:"primaryCurrency" binding:"required,currency"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit"`
	StartDate       *int64          `json:"startDate,omitempty"`
	EndDate         *int64          `json:"endDate,omitempty"`
}

// TripResponse defines the data returned for a trip.
type TripResponse struct {
	TripID          string          `json:"tripID"`
	Name            string          `json:"name"`
	PrimaryCurrency string          `json:"primaryCurrency"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit"`
	IsActive        bool            `json:"isActive"`
	StartDate       *int64          `json:"startDate,omitempty"`
	EndDate         *int64          `json:"endDate,omitempty"`
	CreatedAt       int64           `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   int64           `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ListTripsResponse wraps a list of trips.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToTripResponse converts domain.Trip to DTO.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:          t.TripID,
		Name:            t.Name,
		PrimaryCurrency: string(t.PrimaryCurrency),
		BudgetLimit:     t.BudgetLimit,
		IsActive:        t.IsActive,
		StartDate:       ToUnixNanoPtr(t.StartDate),
		EndDate:         ToUnixNanoPtr(t.EndDate),
		CreatedAt:       t.CreatedAt.UnixNano(),
		CreatedBy:       t.CreatedBy,
		LastUpdatedAt:   t.LastUpdatedAt.UnixNano(),
		LastUpdatedBy:   t.LastUpdatedBy,
	}
}

// ToListTripsResponse converts a slice of domain.Trip to DTO.
func ToListTripsResponse(trips []domain.Trip) ListTripsResponse {
	list := make([]TripResponse, len(trips))
	for i := range trips {
		list[i] = ToTripResponse(&trips[i])
	}
	return ListTripsResponse{Trips: list}
}
