package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// DAILY API USAGE
	// -------------------------------
	usageTableSQL := `
		CREATE TABLE IF NOT EXISTS daily_api_usage (
			date VARCHAR(10) PRIMARY KEY,
			google_calls INTEGER NOT NULL DEFAULT 0,
			yelp_calls INTEGER NOT NULL DEFAULT 0,
			llm_calls INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, usageTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANT CACHE
	// -------------------------------
	restaurantCacheSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_cache (
			place_id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(500) NOT NULL DEFAULT '',
			geo_lat DOUBLE PRECISION NOT NULL DEFAULT 0,
			geo_lng DOUBLE PRECISION NOT NULL DEFAULT 0,
			top_dishes_json TEXT NOT NULL DEFAULT '[]',
			reviews_json TEXT NOT NULL DEFAULT '[]',
			image_url VARCHAR(1000) NOT NULL DEFAULT '',
			last_updated TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantCacheSQL); err != nil {
		return err
	}

	// -------------------------------
	// GENERIC DISH CATALOG
	// -------------------------------
	genericDishSQL := `
		CREATE TABLE IF NOT EXISTS generic_dishes (
			cuisine VARCHAR(100) NOT NULL,
			dish_name VARCHAR(255) NOT NULL,
			pref_lang_code VARCHAR(10) NOT NULL,
			orig_lang VARCHAR(255) NOT NULL DEFAULT '',
			eng_lang VARCHAR(255) NOT NULL DEFAULT '',
			pref_lang VARCHAR(255) NOT NULL DEFAULT '',
			ingredients TEXT NOT NULL DEFAULT '',
			taste TEXT NOT NULL DEFAULT '',
			eat_method TEXT NOT NULL DEFAULT '',
			sauces TEXT NOT NULL DEFAULT '',
			avg_price VARCHAR(100) NOT NULL DEFAULT '',
			image_url VARCHAR(1000) NOT NULL DEFAULT '',
			PRIMARY KEY (cuisine, dish_name, pref_lang_code)
		)
	`
	if _, err := db.Exec(ctx, genericDishSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
