package utils

import (
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// minor units per currency where they differ from the usual two
var currencyPrecision = map[domain.CurrencyCode]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// CurrencyPrecision returns the number of minor-unit digits used to display code.
func CurrencyPrecision(code domain.CurrencyCode) int32 {
	if p, ok := currencyPrecision[code]; ok {
		return p
	}
	return 2
}

// FormatWithCurrencyPrecision formats an amount with the display precision of a currency.
// Only the display is rounded; stored amounts keep full precision.
// Example: amount 12.3456 with USD returns "12.35"
// Example: amount 1234.5 with JPY returns "1235"
func FormatWithCurrencyPrecision(amount decimal.Decimal, code domain.CurrencyCode) string {
	return FormatWithPrecision(amount, CurrencyPrecision(code))
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
