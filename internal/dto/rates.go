package dto

import (
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RatesResponse defines the current rate snapshot.
type RatesResponse struct {
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt int64                      `json:"fetchedAt"` // epoch ns
	AgeNs     int64                      `json:"ageNs"`
	Stale     bool                       `json:"stale"`
}

// ToRatesResponse converts a snapshot to DTO.
func ToRatesResponse(s *domain.RateSnapshot, stale bool, now time.Time) RatesResponse {
	rates := make(map[string]decimal.Decimal, len(s.Table))
	for code, rate := range s.Table {
		rates[string(code)] = rate
	}
	return RatesResponse{
		Rates:     rates,
		FetchedAt: s.FetchedAt.UnixNano(),
		AgeNs:     s.Age(now).Nanoseconds(),
		Stale:     stale,
	}
}

// LastUpdateResponse reports when rates were last fetched. LastUpdate is omitted when
// no snapshot has ever been stored.
type LastUpdateResponse struct {
	LastUpdate *int64 `json:"lastUpdate,omitempty"`
	Stale      bool   `json:"stale"`
}

// ConvertRequest asks for a conversion preview with the current rates.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from" binding:"required,currency"`
	To     string          `json:"to" binding:"required,currency"`
}

// ConvertResponse is the result of a conversion preview.
type ConvertResponse struct {
	Amount           decimal.Decimal `json:"amount"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Converted        decimal.Decimal `json:"converted"`
	ConvertedDisplay string          `json:"convertedDisplay"` // Converted rounded to the minor unit of To
	RatesAsOf        *int64          `json:"ratesAsOf,omitempty"`
}

// ToConvertResponse converts a conversion result to DTO. snapshot may be nil.
func ToConvertResponse(req ConvertRequest, converted decimal.Decimal, snapshot *domain.RateSnapshot) ConvertResponse {
	resp := ConvertResponse{
		Amount:           req.Amount,
		From:             req.From,
		To:               req.To,
		Converted:        converted,
		ConvertedDisplay: utils.FormatWithCurrencyPrecision(converted, domain.CurrencyCode(req.To)),
	}
	if snapshot != nil {
		ns := snapshot.FetchedAt.UnixNano()
		resp.RatesAsOf = &ns
	}
	return resp
}

// CurrenciesResponse lists the currencies that can be selected.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ToCurrenciesResponse converts a list of codes to DTO.
func ToCurrenciesResponse(codes []domain.CurrencyCode) CurrenciesResponse {
	list := make([]string, len(codes))
	for i, c := range codes {
		list[i] = string(c)
	}
	return CurrenciesResponse{Currencies: list}
}
