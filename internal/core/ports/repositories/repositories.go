package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TripRepo         TripRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	SettingsRepo     SettingsRepository
	RateSnapshotRepo RateSnapshotRepository
}
