package dishes

import "context"

type Repository interface {
	// Get returns the cached entry for a place id, or nil on a miss.
	Get(ctx context.Context, placeID string) (*CachedRestaurant, error)

	// FindByName returns up to limit entries whose name contains the given
	// text, case-insensitively.
	FindByName(ctx context.Context, name string, limit int) ([]*CachedRestaurant, error)

	// Upsert creates or overwrites the entry for its place id.
	Upsert(ctx context.Context, entry *CachedRestaurant) error
}
