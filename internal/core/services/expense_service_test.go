package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/core/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockTripRepo    *MockTripRepository
	mockProvider    *MockRateProvider
	credentials     *staticCredentials
	store           *services.RateStore
	rates           portssvc.ExchangeRateSvcFacade
	service         portssvc.ExpenseSvcFacade
	trip            *domain.Trip
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.credentials = &staticCredentials{key: "key-123"}
	suite.store = services.NewRateStore()
	suite.rates = services.NewExchangeRateService(suite.mockProvider, suite.credentials, services.WithRateStore(suite.store))
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTripRepo, suite.rates, suite.credentials)
	suite.trip = &domain.Trip{TripID: "trip-1", PrimaryCurrency: "USD", BudgetLimit: decimal.NewFromInt(1000)}
}

func (suite *ExpenseServiceTestSuite) storeRates(fetchedAt time.Time, rates map[domain.CurrencyCode]string) *domain.RateSnapshot {
	snapshot := snapshotAt(suite.T(), fetchedAt, rates)
	suite.store.Replace(snapshot)
	return snapshot
}

func expenseRequest(amount string, currency string) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Amount:        decimal.RequireFromString(amount),
		LocalCurrency: currency,
		Category:      string(domain.CategoryFood),
		Date:          time.Date(2026, 10, 2, 19, 30, 0, 0, time.UTC).UnixNano(),
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_FreezesConversion() {
	ctx := context.Background()
	fetchedAt := time.Unix(0, 1_760_000_000_000_000_000)
	suite.storeRates(fetchedAt, map[domain.CurrencyCode]string{"EUR": "1", "USD": "1.1"})
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, "trip-1", expenseRequest("50", "EUR"), "user-1")

	suite.Require().NoError(err)
	suite.True(expense.ConvertedAmount.Equal(decimal.NewFromInt(55)), expense.ConvertedAmount.String())
	suite.Require().NotNil(expense.RatesAsOf)
	suite.Equal(fetchedAt.UnixNano(), expense.RatesAsOf.UnixNano())
	suite.Equal("trip-1", expense.TripID)
	suite.Equal("user-1", expense.CreatedBy)

	// A later refresh does not touch the stored record.
	suite.storeRates(fetchedAt.Add(time.Hour), map[domain.CurrencyCode]string{"EUR": "1", "USD": "2"})
	suite.True(expense.ConvertedAmount.Equal(decimal.NewFromInt(55)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_GateClosed() {
	suite.credentials.key = ""

	_, err := suite.service.CreateExpense(context.Background(), "trip-1", expenseRequest("10", "USD"), "user-1")

	suite.ErrorIs(err, apperrors.ErrExpensesDisabled)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnconvertibleCurrencyCreatesNothing() {
	ctx := context.Background()
	suite.storeRates(time.Now(), map[domain.CurrencyCode]string{"EUR": "1", "USD": "1.1"})
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil).Once()

	_, err := suite.service.CreateExpense(ctx, "trip-1", expenseRequest("300", "THB"), "user-1")

	suite.ErrorIs(err, apperrors.ErrUnconvertibleCurrency)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SameCurrencyWithoutRates() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, "trip-1", expenseRequest("12.50", "USD"), "user-1")

	suite.Require().NoError(err)
	suite.True(expense.ConvertedAmount.Equal(decimal.RequireFromString("12.5")))
	suite.Nil(expense.RatesAsOf)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidInput() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil)

	req := expenseRequest("0", "USD")
	_, err := suite.service.CreateExpense(ctx, "trip-1", req, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	req = expenseRequest("5", "USD")
	req.Category = "souvenirs"
	_, err = suite.service.CreateExpense(ctx, "trip-1", req, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_TripNotFound() {
	ctx := context.Background()
	suite.mockTripRepo.On("FindTripByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateExpense(ctx, "missing", expenseRequest("5", "USD"), "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RefreezesWithCurrentRates() {
	ctx := context.Background()
	oldAsOf := time.Unix(1_700_000_000, 0)
	existing := &domain.Expense{
		ExpenseID:       "exp-1",
		TripID:          "trip-1",
		Amount:          decimal.NewFromInt(50),
		LocalCurrency:   "EUR",
		ConvertedAmount: decimal.NewFromInt(55),
		RatesAsOf:       &oldAsOf,
		Category:        domain.CategoryFood,
		Date:            time.Unix(1_700_000_000, 0),
	}
	newAsOf := time.Unix(1_760_000_000, 0)
	suite.storeRates(newAsOf, map[domain.CurrencyCode]string{"EUR": "1", "USD": "1.2"})
	suite.mockExpenseRepo.On("FindExpenseByID", ctx, "exp-1").Return(existing, nil).Once()
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ConvertedAmount.Equal(decimal.NewFromInt(120)) && e.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	req := dto.UpdateExpenseRequest{Amount: decimal.NewFromInt(100), LocalCurrency: "EUR", Category: "shopping", Date: newAsOf.UnixNano()}
	expense, err := suite.service.UpdateExpense(ctx, "exp-1", req, "user-2")

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryShopping, expense.Category)
	suite.Require().NotNil(expense.RatesAsOf)
	suite.Equal(newAsOf.UnixNano(), expense.RatesAsOf.UnixNano())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_GateClosed() {
	suite.credentials.key = ""

	_, err := suite.service.UpdateExpense(context.Background(), "exp-1", dto.UpdateExpenseRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrExpensesDisabled)
}

func (suite *ExpenseServiceTestSuite) TestListRecentExpenses() {
	ctx := context.Background()
	recent := []domain.Expense{{ExpenseID: "a"}, {ExpenseID: "b"}}
	suite.mockTripRepo.On("FindTripByID", ctx, "trip-1").Return(suite.trip, nil).Twice()
	suite.mockExpenseRepo.On("ListExpensesByTripID", ctx, "trip-1", services.RecentExpensesLimit).Return(recent, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByTripID", ctx, "trip-1", 0).Return(nil, nil).Once()

	got, err := suite.service.ListRecentExpenses(ctx, "trip-1")
	suite.Require().NoError(err)
	suite.Len(got, 2)

	all, err := suite.service.ListExpenses(ctx, "trip-1")
	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, "exp-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteExpense(ctx, "exp-1"))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
