package models

// RateSnapshot is the row of the rate_snapshots table. Rates are kept as decimal
// strings inside a JSONB document.
type RateSnapshot struct {
	FetchedAtNs int64             `db:"fetched_at_ns"`
	Rates       map[string]string `db:"rates"`
}
