package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockSettingsRepository
	mockProvider *MockRateProvider
	service      portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewSettingsService(suite.mockRepo, suite.mockProvider)
}

func (suite *SettingsServiceTestSuite) TestGateStartsClosed() {
	suite.False(suite.service.ExpensesEnabled())
	_, ok := suite.service.ActiveAPIKey()
	suite.False(ok)
	suite.Equal(portssvc.APIKeyStatus{}, suite.service.APIKeyStatus())
}

func (suite *SettingsServiceTestSuite) TestValidateAndSave_Success() {
	ctx := context.Background()
	suite.mockProvider.On("ValidateKey", ctx, "abcd1234").Return(true, nil).Once()
	suite.mockRepo.On("SaveAPIKey", ctx, "abcd1234", "user-1").Return(nil).Once()

	err := suite.service.ValidateAndSaveAPIKey(ctx, "  abcd1234 ", "user-1")

	suite.Require().NoError(err)
	suite.True(suite.service.ExpensesEnabled())
	key, ok := suite.service.ActiveAPIKey()
	suite.True(ok)
	suite.Equal("abcd1234", key)
	suite.Equal(portssvc.APIKeyStatus{Configured: true, MaskedKey: "****1234"}, suite.service.APIKeyStatus())
	suite.mockProvider.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestValidateAndSave_EmptyKey() {
	err := suite.service.ValidateAndSaveAPIKey(context.Background(), "   ", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "ValidateKey", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestValidateAndSave_FailClosed() {
	tests := []struct {
		name  string
		valid bool
		err   error
	}{
		{name: "rejected by provider", valid: false},
		{name: "server error class", valid: false, err: errors.New("rate provider returned HTTP 503")},
		{name: "network failure", valid: false, err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			suite.mockProvider.On("ValidateKey", ctx, "candidate").Return(tt.valid, tt.err).Once()

			err := suite.service.ValidateAndSaveAPIKey(ctx, "candidate", "user-1")

			suite.ErrorIs(err, apperrors.ErrInvalidCredential)
			suite.False(suite.service.ExpensesEnabled())
			suite.mockRepo.AssertNotCalled(suite.T(), "SaveAPIKey", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (suite *SettingsServiceTestSuite) TestValidateAndSave_InvalidKeepsPreviousKey() {
	ctx := context.Background()
	suite.mockProvider.On("ValidateKey", ctx, "good-key").Return(true, nil).Once()
	suite.mockRepo.On("SaveAPIKey", ctx, "good-key", "user-1").Return(nil).Once()
	suite.Require().NoError(suite.service.ValidateAndSaveAPIKey(ctx, "good-key", "user-1"))

	suite.mockProvider.On("ValidateKey", ctx, "bad-key").Return(false, nil).Once()
	err := suite.service.ValidateAndSaveAPIKey(ctx, "bad-key", "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidCredential)
	key, ok := suite.service.ActiveAPIKey()
	suite.True(ok)
	suite.Equal("good-key", key)
}

func (suite *SettingsServiceTestSuite) TestValidateAndSave_StorageFailureLeavesGateClosed() {
	ctx := context.Background()
	suite.mockProvider.On("ValidateKey", ctx, "good-key").Return(true, nil).Once()
	suite.mockRepo.On("SaveAPIKey", ctx, "good-key", "user-1").Return(errors.New("db down")).Once()

	err := suite.service.ValidateAndSaveAPIKey(ctx, "good-key", "user-1")

	suite.Error(err)
	suite.False(suite.service.ExpensesEnabled())
}

func (suite *SettingsServiceTestSuite) TestDeleteAPIKey_ClosesGateImmediately() {
	ctx := context.Background()
	suite.mockRepo.On("FindAPIKey", ctx).Return("stored-key", nil).Once()
	suite.Require().NoError(suite.service.LoadAPIKey(ctx))
	suite.Require().True(suite.service.ExpensesEnabled())

	suite.mockRepo.On("DeleteAPIKey", ctx).Return(nil).Once()
	suite.Require().NoError(suite.service.DeleteAPIKey(ctx))

	suite.False(suite.service.ExpensesEnabled())
}

func (suite *SettingsServiceTestSuite) TestDeleteAPIKey_StorageFailureStillClosesGate() {
	ctx := context.Background()
	suite.mockRepo.On("FindAPIKey", ctx).Return("stored-key", nil).Once()
	suite.Require().NoError(suite.service.LoadAPIKey(ctx))

	suite.mockRepo.On("DeleteAPIKey", ctx).Return(errors.New("db down")).Once()
	suite.Error(suite.service.DeleteAPIKey(ctx))

	suite.False(suite.service.ExpensesEnabled())
}

func (suite *SettingsServiceTestSuite) TestLoadAPIKey_NothingStored() {
	ctx := context.Background()
	suite.mockRepo.On("FindAPIKey", ctx).Return("", apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.LoadAPIKey(ctx))
	suite.False(suite.service.ExpensesEnabled())
}

func (suite *SettingsServiceTestSuite) TestLoadAPIKey_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindAPIKey", ctx).Return("", errors.New("db down")).Once()

	suite.Error(suite.service.LoadAPIKey(ctx))
	suite.False(suite.service.ExpensesEnabled())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
