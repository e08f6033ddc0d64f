package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_budget_app/internal/models"
	"github.com/SscSPs/travel_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRateSnapshotRepository struct {
	BaseRepository
}

func newPgxRateSnapshotRepository(pool *pgxpool.Pool) *PgxRateSnapshotRepository {
	return &PgxRateSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateSnapshotRepository = (*PgxRateSnapshotRepository)(nil)

// SaveRateSnapshot inserts the snapshot and prunes older ones; only the latest is ever read.
func (r *PgxRateSnapshotRepository) SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error {
	m := mapping.ToModelRateSnapshot(snapshot)
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO rate_snapshots (fetched_at_ns, rates)
			VALUES ($1, $2)
			ON CONFLICT (fetched_at_ns) DO UPDATE SET rates = EXCLUDED.rates;`,
			m.FetchedAtNs, m.Rates)
		if err != nil {
			return apperrors.NewAppError(500, "failed to save rate snapshot", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM rate_snapshots WHERE fetched_at_ns < $1;`, m.FetchedAtNs); err != nil {
			return apperrors.NewAppError(500, "failed to prune rate snapshots", err)
		}
		return nil
	})
}

func (r *PgxRateSnapshotRepository) FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	rows, err := r.Pool.Query(ctx, `SELECT fetched_at_ns, rates FROM rate_snapshots ORDER BY fetched_at_ns DESC LIMIT 1;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rate snapshots", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.RateSnapshot])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no stored rate snapshot")
		}
		return nil, apperrors.NewAppError(500, "failed to read rate snapshot", err)
	}

	snapshot, err := mapping.ToDomainRateSnapshot(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "stored rate snapshot is corrupt", err)
	}
	return &snapshot, nil
}
