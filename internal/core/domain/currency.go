package domain

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// StalenessThreshold is the maximum age of a rate snapshot before it is eligible for an
// automatic refresh. It equals 24*60*60*1e9 nanoseconds.
const StalenessThreshold = 24 * time.Hour

// CurrencyCode is a short uppercase identifier such as "USD". Comparison is exact.
type CurrencyCode string

// Codes are at most as wide as the VARCHAR(10) currency columns.
var currencyCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// IsValid reports whether c is a code the API accepts. Provider tickers such as
// "USDT" or "1INCH" qualify, lowercase input does not.
func (c CurrencyCode) IsValid() bool {
	return currencyCodePattern.MatchString(string(c))
}

// DefaultCurrencies is offered when no rate table has been fetched yet.
var DefaultCurrencies = []CurrencyCode{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "INR", "MXN"}

// RateTable maps a currency to its rate relative to the base currency.
// A missing entry means the currency cannot be converted.
type RateTable map[CurrencyCode]decimal.Decimal

// Codes returns the currency codes present in the table in ascending order.
func (t RateTable) Codes() []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// RateTableFromFloats builds a RateTable from provider floats, rejecting any rate that is
// not a strictly positive finite number.
func RateTableFromFloats(rates map[string]float64) (RateTable, error) {
	table := make(RateTable, len(rates))
	for code, rate := range rates {
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return nil, fmt.Errorf("%w: rate for %s must be a positive finite number", apperrors.ErrValidation, code)
		}
		table[CurrencyCode(code)] = decimal.NewFromFloat(rate)
	}
	return table, nil
}

// RateSnapshot is an immutable rate table together with the time it was fetched.
type RateSnapshot struct {
	Table     RateTable `json:"rates"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// NewRateSnapshot validates and copies table into a new snapshot.
func NewRateSnapshot(table RateTable, fetchedAt time.Time) (*RateSnapshot, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: rate table is empty", apperrors.ErrValidation)
	}
	copied := make(RateTable, len(table))
	for code, rate := range table {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, code)
		}
		copied[code] = rate
	}
	return &RateSnapshot{Table: copied, FetchedAt: fetchedAt}, nil
}

// Age returns how old the snapshot is at now.
func (s *RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}
