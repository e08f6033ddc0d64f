package mapping

import (
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:          d.TripID,
		Name:            d.Name,
		PrimaryCurrency: string(d.PrimaryCurrency),
		BudgetLimit:     d.BudgetLimit,
		IsActive:        d.IsActive,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:          m.TripID,
		Name:            m.Name,
		PrimaryCurrency: domain.CurrencyCode(m.PrimaryCurrency),
		BudgetLimit:     m.BudgetLimit,
		IsActive:        m.IsActive,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTripSlice converts a slice of model Trips to a slice of domain Trips
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	ds := make([]domain.Trip, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrip(m)
	}
	return ds
}
