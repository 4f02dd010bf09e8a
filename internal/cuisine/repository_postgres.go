package cuisine

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Find all dishes for (cuisine, language code)
// --------------------------------------------------
func (r *PostgresRepository) Find(
	ctx context.Context,
	cuisine string,
	langCode string,
) ([]*GenericDish, error) {

	query := `
		SELECT
			cuisine,
			dish_name,
			orig_lang,
			eng_lang,
			pref_lang,
			pref_lang_code,
			ingredients,
			taste,
			eat_method,
			sauces,
			avg_price,
			image_url
		FROM generic_dishes
		WHERE cuisine = $1 AND pref_lang_code = $2
		ORDER BY dish_name
	`

	rows, err := r.db.Query(ctx, query, cuisine, langCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []*GenericDish
	for rows.Next() {
		var d GenericDish
		if err := rows.Scan(
			&d.Cuisine,
			&d.DishName,
			&d.OrigLang,
			&d.EngLang,
			&d.PrefLang,
			&d.PrefLangCode,
			&d.Ingredients,
			&d.Taste,
			&d.EatMethod,
			&d.Sauces,
			&d.AvgPrice,
			&d.ImageURL,
		); err != nil {
			return nil, err
		}
		dishes = append(dishes, &d)
	}

	return dishes, rows.Err()
}

// --------------------------------------------------
// Count dishes for (cuisine, language code)
// --------------------------------------------------
func (r *PostgresRepository) Count(
	ctx context.Context,
	cuisine string,
	langCode string,
) (int, error) {

	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM generic_dishes
		WHERE cuisine = $1 AND pref_lang_code = $2
	`, cuisine, langCode).Scan(&count)

	return count, err
}

// --------------------------------------------------
// Upsert by (cuisine, dish_name, pref_lang_code)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(
	ctx context.Context,
	dish *GenericDish,
) error {

	query := `
		INSERT INTO generic_dishes (
			cuisine,
			dish_name,
			pref_lang_code,
			orig_lang,
			eng_lang,
			pref_lang,
			ingredients,
			taste,
			eat_method,
			sauces,
			avg_price,
			image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (cuisine, dish_name, pref_lang_code) DO UPDATE SET
			orig_lang = EXCLUDED.orig_lang,
			eng_lang = EXCLUDED.eng_lang,
			pref_lang = EXCLUDED.pref_lang,
			ingredients = EXCLUDED.ingredients,
			taste = EXCLUDED.taste,
			eat_method = EXCLUDED.eat_method,
			sauces = EXCLUDED.sauces,
			avg_price = EXCLUDED.avg_price,
			image_url = EXCLUDED.image_url
	`

	_, err := r.db.Exec(
		ctx,
		query,
		dish.Cuisine,
		dish.DishName,
		dish.PrefLangCode,
		dish.OrigLang,
		dish.EngLang,
		dish.PrefLang,
		dish.Ingredients,
		dish.Taste,
		dish.EatMethod,
		dish.Sauces,
		dish.AvgPrice,
		dish.ImageURL,
	)
	return err
}
