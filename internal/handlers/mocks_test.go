package handlers_test

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripService) GetActiveTrip(ctx context.Context, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) GetTripSummary(ctx context.Context, tripID string) (*domain.TripSummary, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripSummary), args.Error(1)
}
func (m *MockTripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) DeleteTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}
func (m *MockTripService) SetActiveTrip(ctx context.Context, tripID string, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, tripID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListRecentExpenses(ctx context.Context, tripID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CurrentRates() *domain.RateSnapshot {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.RateSnapshot)
}
func (m *MockExchangeRateService) IsStale() bool {
	return m.Called().Bool(0)
}
func (m *MockExchangeRateService) Convert(amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, *domain.RateSnapshot, error) {
	args := m.Called(amount, from, to)
	var snapshot *domain.RateSnapshot
	if s := args.Get(1); s != nil {
		snapshot = s.(*domain.RateSnapshot)
	}
	return args.Get(0).(decimal.Decimal), snapshot, args.Error(2)
}
func (m *MockExchangeRateService) AvailableCurrencies() []domain.CurrencyCode {
	return m.Called().Get(0).([]domain.CurrencyCode)
}
func (m *MockExchangeRateService) Refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}
func (m *MockExchangeRateService) AutoRefresh(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}
func (m *MockExchangeRateService) Restore(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) ActiveAPIKey() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}
func (m *MockSettingsService) ExpensesEnabled() bool {
	return m.Called().Bool(0)
}
func (m *MockSettingsService) LoadAPIKey(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockSettingsService) ValidateAndSaveAPIKey(ctx context.Context, key string, userID string) error {
	return m.Called(ctx, key, userID).Error(0)
}
func (m *MockSettingsService) DeleteAPIKey(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockSettingsService) APIKeyStatus() portssvc.APIKeyStatus {
	return m.Called().Get(0).(portssvc.APIKeyStatus)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)
