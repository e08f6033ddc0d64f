package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRateSnapshot converts a domain RateSnapshot to a model RateSnapshot
func ToModelRateSnapshot(d domain.RateSnapshot) models.RateSnapshot {
	rates := make(map[string]string, len(d.Table))
	for code, rate := range d.Table {
		rates[string(code)] = rate.String()
	}
	return models.RateSnapshot{
		FetchedAtNs: d.FetchedAt.UnixNano(),
		Rates:       rates,
	}
}

// ToDomainRateSnapshot converts a model RateSnapshot to a domain RateSnapshot,
// rejecting rates that do not parse as decimals.
func ToDomainRateSnapshot(m models.RateSnapshot) (domain.RateSnapshot, error) {
	table := make(domain.RateTable, len(m.Rates))
	for code, raw := range m.Rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.RateSnapshot{}, fmt.Errorf("invalid stored rate for %s: %w", code, err)
		}
		table[domain.CurrencyCode(code)] = rate
	}
	return domain.RateSnapshot{
		Table:     table,
		FetchedAt: time.Unix(0, m.FetchedAtNs).UTC(),
	}, nil
}
