package dishes

import "time"

// FreshnessWindow is how long a cached restaurant entry is trusted before
// it is treated as a miss. Stale rows are overwritten, never deleted.
const FreshnessWindow = 30 * 24 * time.Hour

// TopDish is one dish extracted from review text. Lists produced by the
// extraction step are sorted by Mentions descending.
type TopDish struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Mentions    int    `json:"mentions"`
	Sentiment   string `json:"sentiment"` // positive | mixed | negative
}

// CachedRestaurant is one row of restaurant_cache, keyed by place id.
type CachedRestaurant struct {
	PlaceID     string    `json:"placeId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	TopDishes   []TopDish `json:"topDishes"`
	Reviews     []string  `json:"reviews"`
	ImageURL    string    `json:"imageUrl"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (c *CachedRestaurant) Fresh(now time.Time) bool {
	return now.Sub(c.LastUpdated) < FreshnessWindow
}
