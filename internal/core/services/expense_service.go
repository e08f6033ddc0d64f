package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/google/uuid"
)

// RecentExpensesLimit is the number of expenses returned by ListRecentExpenses.
const RecentExpensesLimit = 5

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tripRepo    portsrepo.TripReader
	rates       portssvc.ExchangeRateReaderSvc
	gate        portssvc.ExpensesGate
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the time source used for audit fields.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	tripRepo portsrepo.TripReader,
	rates portssvc.ExchangeRateReaderSvc,
	gate portssvc.ExpensesGate,
	options ...ExpenseServiceOption,
) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		rates:       rates,
		gate:        gate,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// GetExpenseByID retrieves an expense by its ID
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses retrieves every expense of a trip
func (s *expenseService) ListExpenses(ctx context.Context, tripID string) ([]domain.Expense, error) {
	return s.listExpenses(ctx, tripID, 0)
}

// ListRecentExpenses retrieves the newest expenses of a trip
func (s *expenseService) ListRecentExpenses(ctx context.Context, tripID string) ([]domain.Expense, error) {
	return s.listExpenses(ctx, tripID, RecentExpensesLimit)
}

func (s *expenseService) listExpenses(ctx context.Context, tripID string, limit int) ([]domain.Expense, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByTripID(ctx, tripID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("trip_id", tripID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// CreateExpense records a new expense with its conversion frozen at the current rates
func (s *expenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if !s.gate.ExpensesEnabled() {
		return nil, apperrors.ErrExpensesDisabled
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		TripID:        trip.TripID,
		Amount:        req.Amount,
		LocalCurrency: domain.CurrencyCode(req.LocalCurrency),
		Category:      domain.Category(req.Category),
		Note:          req.Note,
		Date:          dto.FromUnixNano(req.Date),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.freeze(&expense, trip); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("trip_id", tripID),
		slog.String("converted_amount", expense.ConvertedAmount.String()))
	return &expense, nil
}

// UpdateExpense replaces the raw input of an expense and re-freezes its conversion
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	if !s.gate.ExpensesEnabled() {
		return nil, apperrors.ErrExpensesDisabled
	}

	expense, err := s.GetExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	trip, err := s.tripRepo.FindTripByID(ctx, expense.TripID)
	if err != nil {
		return nil, err
	}

	expense.Amount = req.Amount
	expense.LocalCurrency = domain.CurrencyCode(req.LocalCurrency)
	expense.Category = domain.Category(req.Category)
	expense.Note = req.Note
	expense.Date = dto.FromUnixNano(req.Date)
	expense.LastUpdatedAt = s.now()
	expense.LastUpdatedBy = userID

	if err := s.freeze(expense, trip); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully", slog.String("expense_id", expenseID))
	return expense, nil
}

// DeleteExpense removes an expense
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully", slog.String("expense_id", expenseID))
	return nil
}

// freeze validates the raw input and stores the conversion into the trip currency using
// the snapshot current at this moment. Nothing is written when the conversion fails.
func (s *expenseService) freeze(expense *domain.Expense, trip *domain.Trip) error {
	if err := expense.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	// A single Load of the store: a concurrent refresh cannot mix two tables into one write.
	return expense.FreezeConversion(trip.PrimaryCurrency, s.rates.CurrentRates())
}
