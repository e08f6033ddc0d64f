package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_budget_app/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const apiKeySettingKey = "fx_api_key"

// PgxSettingsRepository stores application settings as key/value rows.
// The API key is sealed before it reaches the database.
type PgxSettingsRepository struct {
	BaseRepository
	sealer *utils.Sealer
}

func newPgxSettingsRepository(pool *pgxpool.Pool, sealer *utils.Sealer) *PgxSettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sealer:         sealer,
	}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) SaveAPIKey(ctx context.Context, key string, updatedBy string) error {
	sealed, err := r.sealer.Seal(key)
	if err != nil {
		return apperrors.NewAppError(500, "failed to seal API key", err)
	}

	query := `
		INSERT INTO app_settings (setting_key, setting_value, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	if _, err := r.Pool.Exec(ctx, query, apiKeySettingKey, sealed, time.Now().UTC(), updatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to save API key", err)
	}
	return nil
}

func (r *PgxSettingsRepository) FindAPIKey(ctx context.Context) (string, error) {
	var sealed string
	err := r.Pool.QueryRow(ctx, `SELECT setting_value FROM app_settings WHERE setting_key = $1;`, apiKeySettingKey).Scan(&sealed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError("API key not configured")
		}
		return "", apperrors.NewAppError(500, "failed to load API key", err)
	}

	plain, err := r.sealer.Open(sealed)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to unseal stored API key", err)
	}
	return plain, nil
}

func (r *PgxSettingsRepository) DeleteAPIKey(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM app_settings WHERE setting_key = $1;`, apiKeySettingKey); err != nil {
		return apperrors.NewAppError(500, "failed to delete API key", err)
	}
	return nil
}
