package cuisine

import "context"

type Repository interface {
	// Find returns all stored dishes for a (cuisine, language code) pair.
	Find(ctx context.Context, cuisine, langCode string) ([]*GenericDish, error)

	// Count returns how many dishes are stored for the pair.
	Count(ctx context.Context, cuisine, langCode string) (int, error)

	// Upsert creates or overwrites a dish by its composite key.
	Upsert(ctx context.Context, dish *GenericDish) error
}
