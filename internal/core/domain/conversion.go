package domain

import (
	"fmt"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another by triangulating through the base
// currency of rates. The amount is divided by the source rate first and then multiplied
// by the target rate. Identical currencies are returned unchanged without a lookup.
func Convert(amount decimal.Decimal, from, to CurrencyCode, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := rates[from]
	if !ok || !fromRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no exchange rate for %s", apperrors.ErrUnconvertibleCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok || !toRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no exchange rate for %s", apperrors.ErrUnconvertibleCurrency, to)
	}

	amountInBase := amount.Div(fromRate)
	return amountInBase.Mul(toRate), nil
}
