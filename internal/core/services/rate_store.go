package services

import (
	"sync/atomic"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
)

// RateStore holds the single current rate snapshot. Readers never block and never
// observe a partially written table.
type RateStore struct {
	current atomic.Pointer[domain.RateSnapshot]
}

// NewRateStore returns an empty store.
func NewRateStore() *RateStore {
	return &RateStore{}
}

// Current returns the stored snapshot, or nil before the first successful fetch.
func (r *RateStore) Current() *domain.RateSnapshot {
	return r.current.Load()
}

// Replace swaps in snapshot wholesale. The fetch just completed always wins, whatever
// timestamp the stored snapshot carries. Reports whether the store changed.
func (r *RateStore) Replace(snapshot *domain.RateSnapshot) bool {
	if snapshot == nil {
		return false
	}
	r.current.Store(snapshot)
	return true
}

// Fill stores snapshot only while the store is empty, so a persisted snapshot loaded
// at startup never overwrites a fetch that finished first. Reports whether it was stored.
func (r *RateStore) Fill(snapshot *domain.RateSnapshot) bool {
	if snapshot == nil {
		return false
	}
	return r.current.CompareAndSwap(nil, snapshot)
}

// IsStale reports whether no snapshot exists or the stored one is older than threshold at now.
func (r *RateStore) IsStale(now time.Time, threshold time.Duration) bool {
	snapshot := r.current.Load()
	if snapshot == nil {
		return true
	}
	return snapshot.Age(now) > threshold
}
