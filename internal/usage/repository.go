package usage

import "context"

type Repository interface {
	// GetOrCreate returns the usage row for the given date, inserting a
	// zeroed row if none exists yet.
	GetOrCreate(ctx context.Context, date string) (*DailyUsage, error)

	// Increment adds one to the provider's counter for the given date,
	// creating the row if absent.
	Increment(ctx context.Context, date string, provider Provider) error
}
