package dto

import (
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one row of the per-category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TripSummaryResponse defines the aggregated budget view of a trip.
type TripSummaryResponse struct {
	TripID             string                  `json:"tripID"`
	Currency           string                  `json:"currency"`
	BudgetLimit        decimal.Decimal         `json:"budgetLimit"`
	TotalSpent         decimal.Decimal         `json:"totalSpent"`
	Remaining          decimal.Decimal         `json:"remaining"`
	TotalSpentDisplay  string                  `json:"totalSpentDisplay"` // rounded to the currency's minor unit
	RemainingDisplay   string                  `json:"remainingDisplay"`
	PercentUsed        decimal.Decimal         `json:"percentUsed"`
	BudgetUndefined    bool                    `json:"budgetUndefined"`
	OverBudget         bool                    `json:"overBudget"`
	ExpenseCount       int                     `json:"expenseCount"`
	ExpensesByCategory []CategoryTotalResponse `json:"expensesByCategory"`
}

// ToTripSummaryResponse converts domain.TripSummary to DTO.
func ToTripSummaryResponse(s *domain.TripSummary) TripSummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(s.ExpensesByCategory))
	for i, c := range s.ExpensesByCategory {
		byCategory[i] = CategoryTotalResponse{Category: string(c.Category), Amount: c.Amount}
	}
	return TripSummaryResponse{
		TripID:             s.TripID,
		Currency:           string(s.Currency),
		BudgetLimit:        s.BudgetLimit,
		TotalSpent:         s.TotalSpent,
		Remaining:          s.Remaining,
		TotalSpentDisplay:  utils.FormatWithCurrencyPrecision(s.TotalSpent, s.Currency),
		RemainingDisplay:   utils.FormatWithCurrencyPrecision(s.Remaining, s.Currency),
		PercentUsed:        s.PercentUsed,
		BudgetUndefined:    s.BudgetUndefined,
		OverBudget:         s.OverBudget,
		ExpenseCount:       s.ExpenseCount,
		ExpensesByCategory: byCategory,
	}
}
