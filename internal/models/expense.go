package models

import "github.com/shopspring/decimal"

// Expense is the row of the expenses table. Instants are stored as epoch nanoseconds
// so no precision is lost to the timestamp column type.
type Expense struct {
	ExpenseID       string          `db:"expense_id"`
	TripID          string          `db:"trip_id"`
	Amount          decimal.Decimal `db:"amount"`
	LocalCurrency   string          `db:"local_currency"`
	ConvertedAmount decimal.Decimal `db:"converted_amount"`
	RatesAsOfNs     *int64          `db:"rates_as_of_ns"`
	Category        string          `db:"category"`
	Note            *string         `db:"note"`
	ExpenseDateNs   int64           `db:"expense_date_ns"`
	AuditFields
}
