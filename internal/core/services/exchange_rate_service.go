package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/travel_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// There is only one rate table, so every fetch shares one in-flight key.
const refreshFlightKey = "rates"

// DefaultFetchTimeout bounds a single provider fetch, including fetches whose callers gave up.
const DefaultFetchTimeout = 30 * time.Second

// exchangeRateService owns the rate store and implements the refresh policy.
type exchangeRateService struct {
	BaseService
	store        *RateStore
	provider     providers.RateProvider
	credentials  portssvc.CredentialSource
	snapshotRepo portsrepo.RateSnapshotRepository

	flight        singleflight.Group
	autoAttempted atomic.Bool // reset only by a process restart

	fetchTimeout time.Duration
	now          func() time.Time
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithRateSnapshotRepository persists every stored snapshot and enables Restore.
func WithRateSnapshotRepository(repo portsrepo.RateSnapshotRepository) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.snapshotRepo = repo
	}
}

// WithFetchTimeout overrides DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithClock overrides the time source used for fetch timestamps and staleness.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// WithRateStore shares an existing store with the service.
func WithRateStore(store *RateStore) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.store = store
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(provider providers.RateProvider, credentials portssvc.CredentialSource, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		store:        NewRateStore(),
		provider:     provider,
		credentials:  credentials,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure exchangeRateService implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CurrentRates returns the stored snapshot
func (s *exchangeRateService) CurrentRates() *domain.RateSnapshot {
	return s.store.Current()
}

// IsStale reports whether an automatic refresh would be due
func (s *exchangeRateService) IsStale() bool {
	return s.store.IsStale(s.now(), domain.StalenessThreshold)
}

// Convert converts with whatever snapshot is current at the moment of the call
func (s *exchangeRateService) Convert(amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, *domain.RateSnapshot, error) {
	snapshot := s.store.Current()
	var table domain.RateTable
	if snapshot != nil {
		table = snapshot.Table
	}

	converted, err := domain.Convert(amount, from, to, table)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if from == to {
		return converted, nil, nil
	}
	return converted, snapshot, nil
}

// AvailableCurrencies lists the codes of the current table, or the defaults before any fetch
func (s *exchangeRateService) AvailableCurrencies() []domain.CurrencyCode {
	snapshot := s.store.Current()
	if snapshot == nil {
		codes := make([]domain.CurrencyCode, len(domain.DefaultCurrencies))
		copy(codes, domain.DefaultCurrencies)
		return codes
	}
	return snapshot.Table.Codes()
}

// Refresh fetches a new table regardless of staleness
func (s *exchangeRateService) Refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	apiKey, ok := s.credentials.ActiveAPIKey()
	if !ok {
		return nil, fmt.Errorf("%w: no API key configured", apperrors.ErrInvalidCredential)
	}
	return s.refresh(ctx, apiKey)
}

// AutoRefresh runs the automatic refresh at most once per process
func (s *exchangeRateService) AutoRefresh(ctx context.Context) bool {
	apiKey, ok := s.credentials.ActiveAPIKey()
	if !ok {
		s.LogDebug(ctx, "Skipping automatic rate refresh, no API key configured")
		return false
	}
	if !s.IsStale() {
		return false
	}
	// Claimed before the fetch starts so a concurrent trigger cannot start a second one.
	if !s.autoAttempted.CompareAndSwap(false, true) {
		return false
	}

	s.LogInfo(ctx, "Rates are stale, starting automatic refresh")
	if _, err := s.refresh(ctx, apiKey); err != nil {
		s.LogWarn(ctx, err, "Automatic rate refresh failed")
	}
	return true
}

// Restore loads the persisted snapshot, if any
func (s *exchangeRateService) Restore(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}

	snapshot, err := s.snapshotRepo.FindLatestRateSnapshot(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No persisted rate snapshot found")
			return nil
		}
		s.LogError(ctx, err, "Failed to load persisted rate snapshot")
		return fmt.Errorf("failed to restore rate snapshot: %w", err)
	}

	restored, err := domain.NewRateSnapshot(snapshot.Table, snapshot.FetchedAt)
	if err != nil {
		s.LogError(ctx, err, "Persisted rate snapshot is invalid, ignoring it")
		return nil
	}

	if s.store.Fill(restored) {
		s.LogInfo(ctx, "Restored persisted rate snapshot",
			slog.Int("currencies", len(restored.Table)),
			slog.Time("fetched_at", restored.FetchedAt))
	}
	return nil
}

// refresh coalesces concurrent callers onto one provider call. The fetch runs detached
// from ctx, so a caller that stops waiting does not discard the completed result.
func (s *exchangeRateService) refresh(ctx context.Context, apiKey string) (*domain.RateSnapshot, error) {
	resultCh := s.flight.DoChan(refreshFlightKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.fetchAndStore(fetchCtx, apiKey)
	})

	select {
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.RateSnapshot), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRateFetchFailed, ctx.Err())
	}
}

func (s *exchangeRateService) fetchAndStore(ctx context.Context, apiKey string) (*domain.RateSnapshot, error) {
	table, err := s.provider.FetchRates(ctx, apiKey)
	if err != nil {
		s.LogError(ctx, err, "Rate provider fetch failed")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRateFetchFailed, err)
	}

	snapshot, err := domain.NewRateSnapshot(table, s.now())
	if err != nil {
		s.LogError(ctx, err, "Rate provider returned an unusable table")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRateFetchFailed, err)
	}

	s.store.Replace(snapshot)
	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.Int("currencies", len(snapshot.Table)),
		slog.Time("fetched_at", snapshot.FetchedAt))

	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.SaveRateSnapshot(ctx, *snapshot); err != nil {
			s.LogWarn(ctx, err, "Failed to persist rate snapshot")
		}
	}
	return snapshot, nil
}
