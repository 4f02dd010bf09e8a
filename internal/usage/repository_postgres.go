package usage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Get or lazily create today's usage row
// --------------------------------------------------
func (r *PostgresRepository) GetOrCreate(
	ctx context.Context,
	date string,
) (*DailyUsage, error) {

	query := `
		INSERT INTO daily_api_usage (date)
		VALUES ($1)
		ON CONFLICT (date) DO UPDATE SET date = EXCLUDED.date
		RETURNING date, google_calls, yelp_calls, llm_calls
	`

	var u DailyUsage
	err := r.db.QueryRow(ctx, query, date).Scan(
		&u.Date,
		&u.GoogleCalls,
		&u.YelpCalls,
		&u.LLMCalls,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// --------------------------------------------------
// Atomic +1 for one provider column
// --------------------------------------------------
func (r *PostgresRepository) Increment(
	ctx context.Context,
	date string,
	provider Provider,
) error {

	column, err := counterColumn(provider)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO daily_api_usage (date, %s)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE
		SET %s = daily_api_usage.%s + 1
	`, column, column, column)

	_, err = r.db.Exec(ctx, query, date)
	return err
}

// counterColumn maps a provider onto its column name. The column is
// interpolated into SQL, so it must come from this fixed set.
func counterColumn(provider Provider) (string, error) {
	switch provider {
	case ProviderGoogle:
		return "google_calls", nil
	case ProviderYelp:
		return "yelp_calls", nil
	case ProviderLLM:
		return "llm_calls", nil
	}
	return "", fmt.Errorf("unknown provider: %s", provider)
}
