package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a journey with a budget denominated in a single primary currency.
type Trip struct {
	TripID          string          `json:"tripID"`
	Name            string          `json:"name"`
	PrimaryCurrency CurrencyCode    `json:"primaryCurrency"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit"`
	IsActive        bool            `json:"isActive"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	AuditFields
}

// Validate checks the trip invariants that do not need storage access.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("trip name is required")
	}
	if t.PrimaryCurrency == "" {
		return errors.New("primary currency is required")
	}
	if t.BudgetLimit.IsNegative() {
		return errors.New("budget limit cannot be negative")
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}
