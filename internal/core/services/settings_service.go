package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
)

// settingsService holds the validated API key. The in-memory key is the feature gate:
// expenses are enabled exactly while it is set.
type settingsService struct {
	BaseService
	repo     portsrepo.SettingsRepository
	provider providers.RateProvider

	mu     sync.RWMutex
	apiKey string
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo portsrepo.SettingsRepository, provider providers.RateProvider) portssvc.SettingsSvcFacade {
	return &settingsService{
		repo:     repo,
		provider: provider,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// ActiveAPIKey returns the key in use
func (s *settingsService) ActiveAPIKey() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey, s.apiKey != ""
}

// ExpensesEnabled reports the feature gate
func (s *settingsService) ExpensesEnabled() bool {
	_, ok := s.ActiveAPIKey()
	return ok
}

// LoadAPIKey restores the persisted key. Only keys that passed validation are ever persisted.
func (s *settingsService) LoadAPIKey(ctx context.Context) error {
	key, err := s.repo.FindAPIKey(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No API key configured, expenses are disabled")
			return nil
		}
		s.LogError(ctx, err, "Failed to load API key")
		return fmt.Errorf("failed to load API key: %w", err)
	}

	s.mu.Lock()
	s.apiKey = key
	s.mu.Unlock()

	s.LogInfo(ctx, "API key loaded, expenses are enabled")
	return nil
}

// ValidateAndSaveAPIKey asks the provider about key and stores it only on an explicit success
func (s *settingsService) ValidateAndSaveAPIKey(ctx context.Context, key string, userID string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.NewValidationError("API key cannot be empty")
	}

	valid, err := s.provider.ValidateKey(ctx, key)
	if err != nil {
		s.LogWarn(ctx, err, "API key validation could not be completed")
		return fmt.Errorf("%w: validation failed: %v", apperrors.ErrInvalidCredential, err)
	}
	if !valid {
		s.LogInfo(ctx, "API key rejected by rate provider")
		return apperrors.ErrInvalidCredential
	}

	if err := s.repo.SaveAPIKey(ctx, key, userID); err != nil {
		s.LogError(ctx, err, "Failed to save API key")
		return fmt.Errorf("failed to save API key: %w", err)
	}

	s.mu.Lock()
	s.apiKey = key
	s.mu.Unlock()

	s.LogInfo(ctx, "API key validated and saved")
	return nil
}

// DeleteAPIKey closes the gate before touching storage, so a storage failure never
// leaves expenses enabled.
func (s *settingsService) DeleteAPIKey(ctx context.Context) error {
	s.mu.Lock()
	s.apiKey = ""
	s.mu.Unlock()

	if err := s.repo.DeleteAPIKey(ctx); err != nil {
		s.LogError(ctx, err, "Failed to delete API key")
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	s.LogInfo(ctx, "API key deleted, expenses are disabled")
	return nil
}

// APIKeyStatus reports the configured key in masked form
func (s *settingsService) APIKeyStatus() portssvc.APIKeyStatus {
	key, ok := s.ActiveAPIKey()
	if !ok {
		return portssvc.APIKeyStatus{}
	}
	return portssvc.APIKeyStatus{Configured: true, MaskedKey: maskKey(key)}
}

func maskKey(key string) string {
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}
