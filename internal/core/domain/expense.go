package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category tags an expense for the per-category breakdown.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryActivities    Category = "activities"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// Categories lists every supported category tag.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryAccommodation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is one of the supported tags.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense records a raw amount in a local currency together with the amount in the
// trip's primary currency. ConvertedAmount is written once, when the expense is created
// or edited, and is never recomputed when rates change afterwards.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	TripID          string          `json:"tripID"`
	Amount          decimal.Decimal `json:"amount"`
	LocalCurrency   CurrencyCode    `json:"localCurrency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	RatesAsOf       *time.Time      `json:"ratesAsOf,omitempty"` // fetch time of the snapshot used, nil when no conversion was needed
	Category        Category        `json:"category"`
	Note            *string         `json:"note,omitempty"`
	Date            time.Time       `json:"date"`
	AuditFields
}

// Validate checks the raw input fields of an expense.
func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return errors.New("expense amount must be positive")
	}
	if e.LocalCurrency == "" {
		return errors.New("local currency is required")
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if e.Date.IsZero() {
		return errors.New("expense date is required")
	}
	return nil
}

// FreezeConversion converts the raw amount into target using snapshot and stores the
// result on the expense. A nil snapshot only allows same-currency expenses.
func (e *Expense) FreezeConversion(target CurrencyCode, snapshot *RateSnapshot) error {
	var table RateTable
	if snapshot != nil {
		table = snapshot.Table
	}

	converted, err := Convert(e.Amount, e.LocalCurrency, target, table)
	if err != nil {
		return err
	}

	e.ConvertedAmount = converted
	e.RatesAsOf = nil
	if snapshot != nil && e.LocalCurrency != target {
		asOf := snapshot.FetchedAt
		e.RatesAsOf = &asOf
	}
	return nil
}
