package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PercentUsedBudgetUndefined is reported as PercentUsed when money was spent against a
// zero budget.
var PercentUsedBudgetUndefined = decimal.NewFromInt(1_000_000)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the summed converted amount of one category.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TripSummary is derived on demand from a trip and its expenses. It is never stored.
type TripSummary struct {
	TripID             string          `json:"tripID"`
	Currency           CurrencyCode    `json:"currency"`
	BudgetLimit        decimal.Decimal `json:"budgetLimit"`
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	Remaining          decimal.Decimal `json:"remaining"`
	PercentUsed        decimal.Decimal `json:"percentUsed"`
	BudgetUndefined    bool            `json:"budgetUndefined"`
	OverBudget         bool            `json:"overBudget"`
	ExpenseCount       int             `json:"expenseCount"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
}

// Summarize aggregates the frozen converted amounts of the trip's expenses. Expenses
// that belong to another trip are ignored.
func Summarize(trip Trip, expenses []Expense) TripSummary {
	total := decimal.Zero
	byCategory := make(map[Category]decimal.Decimal)
	count := 0

	for _, e := range expenses {
		if e.TripID != trip.TripID {
			continue
		}
		count++
		total = total.Add(e.ConvertedAmount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.ConvertedAmount)
	}

	summary := TripSummary{
		TripID:             trip.TripID,
		Currency:           trip.PrimaryCurrency,
		BudgetLimit:        trip.BudgetLimit,
		TotalSpent:         total,
		Remaining:          trip.BudgetLimit.Sub(total),
		ExpenseCount:       count,
		ExpensesByCategory: make([]CategoryTotal, 0, len(byCategory)),
	}

	switch {
	case trip.BudgetLimit.IsPositive():
		summary.PercentUsed = total.Div(trip.BudgetLimit).Mul(hundred)
	case total.IsZero():
		summary.PercentUsed = decimal.Zero
	default:
		summary.PercentUsed = PercentUsedBudgetUndefined
		summary.BudgetUndefined = true
	}
	summary.OverBudget = summary.Remaining.IsNegative()

	for category, amount := range byCategory {
		summary.ExpensesByCategory = append(summary.ExpensesByCategory, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(summary.ExpensesByCategory, func(i, j int) bool {
		a, b := summary.ExpensesByCategory[i], summary.ExpensesByCategory[j]
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c > 0
		}
		return a.Category < b.Category
	})

	return summary
}
