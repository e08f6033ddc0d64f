package services

import (
	"github.com/SscSPs/travel_budget_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider providers.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: it is the credential source and the feature gate for the others
	container.Settings = NewSettingsService(repos.SettingsRepo, provider)

	container.ExchangeRate = NewExchangeRateService(
		provider,
		container.Settings,
		WithRateSnapshotRepository(repos.RateSnapshotRepo),
		WithFetchTimeout(cfg.FXFetchTimeout),
	)

	container.Trip = NewTripService(repos.TripRepo, repos.ExpenseRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.TripRepo, container.ExchangeRate, container.Settings)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TripSvcFacade         = (*tripService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.SettingsSvcFacade     = (*settingsService)(nil)
)
