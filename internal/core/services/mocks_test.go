package services_test

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TripRepository ---
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) FindActiveTrip(ctx context.Context) (*domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	return m.Called(ctx, tripID).Error(0)
}

func (m *MockTripRepository) SetActiveTrip(ctx context.Context, tripID string, updatedBy string) error {
	return m.Called(ctx, tripID, updatedBy).Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByTripID(ctx context.Context, tripID string, limit int) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) SaveAPIKey(ctx context.Context, key string, updatedBy string) error {
	return m.Called(ctx, key, updatedBy).Error(0)
}

func (m *MockSettingsRepository) FindAPIKey(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) DeleteAPIKey(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock RateSnapshotRepository ---
type MockRateSnapshotRepository struct {
	mock.Mock
}

func (m *MockRateSnapshotRepository) SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *MockRateSnapshotRepository) FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context, apiKey string) (domain.RateTable, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateProvider) ValidateKey(ctx context.Context, apiKey string) (bool, error) {
	args := m.Called(ctx, apiKey)
	return args.Bool(0), args.Error(1)
}

// staticCredentials is a fixed CredentialSource and ExpensesGate.
type staticCredentials struct {
	key string
}

func (c *staticCredentials) ActiveAPIKey() (string, bool) {
	return c.key, c.key != ""
}

func (c *staticCredentials) ExpensesEnabled() bool {
	return c.key != ""
}
