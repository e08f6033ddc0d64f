package services

import (
	"context"
)

// CredentialSource exposes the current rate provider API key to consumers that must not
// change it.
type CredentialSource interface {
	// ActiveAPIKey returns the validated key in use, if any.
	ActiveAPIKey() (string, bool)
}

// ExpensesGate reports whether expense creation is allowed.
type ExpensesGate interface {
	// ExpensesEnabled is true exactly when a validated API key is present.
	ExpensesEnabled() bool
}

// APIKeyStatus describes the configured key without revealing it.
type APIKeyStatus struct {
	Configured bool
	MaskedKey  string
}

// SettingsSvcFacade manages the API key and the derived feature gate.
type SettingsSvcFacade interface {
	CredentialSource
	ExpensesGate

	// LoadAPIKey restores the persisted key into memory.
	LoadAPIKey(ctx context.Context) error

	// ValidateAndSaveAPIKey checks key with the provider and stores it only when valid.
	// An invalid key fails with apperrors.ErrInvalidCredential and leaves the current key in place.
	ValidateAndSaveAPIKey(ctx context.Context, key string, userID string) error

	// DeleteAPIKey removes the key, which closes the feature gate.
	DeleteAPIKey(ctx context.Context) error

	// APIKeyStatus reports whether a key is configured.
	APIKeyStatus() APIKeyStatus
}
