package dto

import (
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the raw input of a new expense. The trip is taken from the path.
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	LocalCurrency string          `json:"localCurrency" binding:"required,currency"`
	Category      string          `json:"category" binding:"required,category"`
	Note          *string         `json:"note,omitempty" binding:"omitempty,max=500"`
	Date          int64           `json:"date" binding:"required"` // epoch ns
}

// UpdateExpenseRequest replaces the raw input of an existing expense.
type UpdateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	LocalCurrency string          `json:"localCurrency" binding:"required,currency"`
	Category      string          `json:"category" binding:"required,category"`
	Note          *string         `json:"note,omitempty" binding:"omitempty,max=500"`
	Date          int64           `json:"date" binding:"required"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID       string          `json:"expenseID"`
	TripID          string          `json:"tripID"`
	Amount          decimal.Decimal `json:"amount"`
	LocalCurrency   string          `json:"localCurrency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	RatesAsOf       *int64          `json:"ratesAsOf,omitempty"`
	Category        string          `json:"category"`
	Note            *string         `json:"note,omitempty"`
	Date            int64           `json:"date"`
	CreatedAt       int64           `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   int64           `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		TripID:          e.TripID,
		Amount:          e.Amount,
		LocalCurrency:   string(e.LocalCurrency),
		ConvertedAmount: e.ConvertedAmount,
		RatesAsOf:       ToUnixNanoPtr(e.RatesAsOf),
		Category:        string(e.Category),
		Note:            e.Note,
		Date:            e.Date.UnixNano(),
		CreatedAt:       e.CreatedAt.UnixNano(),
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt.UnixNano(),
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	list := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		list[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: list}
}

// CategoriesResponse lists the supported expense categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToCategoriesResponse converts the category set to DTO.
func ToCategoriesResponse(categories []domain.Category) CategoriesResponse {
	list := make([]string, len(categories))
	for i, c := range categories {
		list[i] = string(c)
	}
	return CategoriesResponse{Categories: list}
}
