package providers

import (
	"context"
	"net/http"
	"time"
)

// Candidate is the normalized shape every provider adapter maps into.
// Reviews is empty for providers that expose none.
type Candidate struct {
	PlaceID  string   `json:"placeId"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	ImageURL string   `json:"imageUrl"`
	Reviews  []string `json:"reviews"`
	Source   string   `json:"source"`
}

// Provider searches for a single restaurant by name and location. Adapters
// never return errors: a missing credential, a network failure, or an empty
// result all come back as nil so the orchestration can fall through to the
// next tier.
type Provider interface {
	Search(ctx context.Context, name, location string) *Candidate
}

var httpClient = &http.Client{Timeout: 15 * time.Second}
