package weather

import "context"

// Repository defines the storage interface for lookup history.
type Repository interface {
	// SaveLookup records a completed lookup.
	SaveLookup(ctx context.Context, lookup *Lookup) error

	// RecentLookups returns up to limit lookups, newest first.
	RecentLookups(ctx context.Context, limit int) ([]*Lookup, error)

	// ClearLookups removes all stored lookups and reports how many.
	ClearLookups(ctx context.Context) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
