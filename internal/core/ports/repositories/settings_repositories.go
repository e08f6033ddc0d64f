package repositories

import (
	"context"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
)

// SettingsRepository persists the single rate provider API key.
type SettingsRepository interface {
	// SaveAPIKey stores key, replacing any previous one.
	SaveAPIKey(ctx context.Context, key string, updatedBy string) error

	// FindAPIKey returns the stored key. Returns apperrors.ErrNotFound when none is stored.
	FindAPIKey(ctx context.Context) (string, error)

	// DeleteAPIKey removes the stored key. Deleting a missing key is not an error.
	DeleteAPIKey(ctx context.Context) error
}

// RateSnapshotRepository persists the most recent rate snapshot so it survives restarts.
type RateSnapshotRepository interface {
	// SaveRateSnapshot stores snapshot as the latest one.
	SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error

	// FindLatestRateSnapshot returns the latest snapshot. Returns apperrors.ErrNotFound when none exists.
	FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error)
}
