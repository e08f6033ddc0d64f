package providers

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
)

// RateProvider is an external source of exchange rates.
type RateProvider interface {
	// FetchRates returns the latest rate table relative to the provider's base currency.
	FetchRates(ctx context.Context, apiKey string) (domain.RateTable, error)

	// ValidateKey reports whether apiKey is accepted by the provider.
	// A non-nil error means the provider could not be asked and the key counts as invalid.
	ValidateKey(ctx context.Context, apiKey string) (bool, error)
}
