package repositories

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByTripID retrieves the expenses of a trip, newest expense date first.
	// A limit of zero or less returns every expense.
	ListExpensesByTripID(ctx context.Context, tripID string, limit int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces the raw input and frozen conversion of an expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
