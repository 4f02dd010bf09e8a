package dishes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Get by place id (nil on miss)
// --------------------------------------------------
func (r *PostgresRepository) Get(
	ctx context.Context,
	placeID string,
) (*CachedRestaurant, error) {

	query := `
		SELECT
			place_id,
			name,
			address,
			geo_lat,
			geo_lng,
			top_dishes_json,
			reviews_json,
			image_url,
			last_updated
		FROM restaurant_cache
		WHERE place_id = $1
	`

	entry, err := scanEntry(r.db.QueryRow(ctx, query, placeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

// --------------------------------------------------
// Find by name fragment (case-insensitive)
// --------------------------------------------------
func (r *PostgresRepository) FindByName(
	ctx context.Context,
	name string,
	limit int,
) ([]*CachedRestaurant, error) {

	query := `
		SELECT
			place_id,
			name,
			address,
			geo_lat,
			geo_lng,
			top_dishes_json,
			reviews_json,
			image_url,
			last_updated
		FROM restaurant_cache
		WHERE name ILIKE '%' || $1 || '%'
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*CachedRestaurant
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// --------------------------------------------------
// Upsert (create if absent, overwrite if present)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(
	ctx context.Context,
	entry *CachedRestaurant,
) error {

	dishesJSON, err := json.Marshal(entry.TopDishes)
	if err != nil {
		return err
	}
	reviewsJSON, err := json.Marshal(entry.Reviews)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO restaurant_cache (
			place_id,
			name,
			address,
			geo_lat,
			geo_lng,
			top_dishes_json,
			reviews_json,
			image_url,
			last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (place_id) DO UPDATE SET
			top_dishes_json = EXCLUDED.top_dishes_json,
			reviews_json = EXCLUDED.reviews_json,
			last_updated = EXCLUDED.last_updated
	`

	_, err = r.db.Exec(
		ctx,
		query,
		entry.PlaceID,
		entry.Name,
		entry.Address,
		entry.Lat,
		entry.Lng,
		string(dishesJSON),
		string(reviewsJSON),
		entry.ImageURL,
		entry.LastUpdated,
	)
	return err
}

func scanEntry(row pgx.Row) (*CachedRestaurant, error) {
	var entry CachedRestaurant
	var dishesJSON, reviewsJSON string

	err := row.Scan(
		&entry.PlaceID,
		&entry.Name,
		&entry.Address,
		&entry.Lat,
		&entry.Lng,
		&dishesJSON,
		&reviewsJSON,
		&entry.ImageURL,
		&entry.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(dishesJSON), &entry.TopDishes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(reviewsJSON), &entry.Reviews); err != nil {
		return nil, err
	}

	return &entry, nil
}
