package pgsql

import (
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_budget_app/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, sealer *utils.Sealer) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:         newPgxTripRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool, sealer),
		RateSnapshotRepo: newPgxRateSnapshotRepository(dbPool),
	}
}
