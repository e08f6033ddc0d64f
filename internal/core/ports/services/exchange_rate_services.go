package services

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read access to the current rate snapshot
type ExchangeRateReaderSvc interface {
	// CurrentRates returns the stored snapshot, or nil when none exists.
	CurrentRates() *domain.RateSnapshot

	// IsStale reports whether the stored snapshot is absent or older than domain.StalenessThreshold.
	IsStale() bool

	// Convert converts amount with the stored snapshot. The snapshot used is returned
	// alongside the result and is nil for same-currency conversions without rates.
	Convert(amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, *domain.RateSnapshot, error)

	// AvailableCurrencies lists the selectable currency codes in ascending order.
	AvailableCurrencies() []domain.CurrencyCode
}

// ExchangeRateRefresherSvc defines the refresh policy of the rate store
type ExchangeRateRefresherSvc interface {
	// Refresh fetches a new table unconditionally. Concurrent callers share one fetch.
	Refresh(ctx context.Context) (*domain.RateSnapshot, error)

	// AutoRefresh fetches a new table at most once per process, and only when a key is
	// configured and the stored snapshot is stale. Failures are logged and swallowed.
	// Reports whether a fetch was started.
	AutoRefresh(ctx context.Context) bool

	// Restore loads the persisted snapshot into the store.
	Restore(ctx context.Context) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}
