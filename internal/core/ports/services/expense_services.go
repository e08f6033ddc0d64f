package services

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense by its ID.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses of a trip, newest first.
	ListExpenses(ctx context.Context, tripID string) ([]domain.Expense, error)

	// ListRecentExpenses retrieves at most RecentExpensesLimit expenses of a trip, newest first.
	ListRecentExpenses(ctx context.Context, tripID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense records an expense and freezes its conversion into the trip currency.
	// Fails with apperrors.ErrExpensesDisabled while the feature gate is closed.
	CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense replaces the raw input of an expense and freezes a new conversion
	// with the rates current at the time of the edit.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
