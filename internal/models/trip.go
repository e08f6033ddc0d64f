package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is the row of the trips table.
type Trip struct {
	TripID          string          `db:"trip_id"`
	Name            string          `db:"name"`
	PrimaryCurrency string          `db:"primary_currency"`
	BudgetLimit     decimal.Decimal `db:"budget_limit"`
	IsActive        bool            `db:"is_active"`
	StartDate       *time.Time      `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`
	AuditFields
}
