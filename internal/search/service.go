package search

import (
	"context"
	"strings"
	"time"

	"github.com/techhub668/menu-decoder/internal/dishes"
	"github.com/techhub668/menu-decoder/internal/providers"
	"github.com/techhub668/menu-decoder/internal/usage"
)

// QuotaGate is the slice of the usage limiter this service needs.
type QuotaGate interface {
	CanCall(ctx context.Context, provider usage.Provider) (bool, error)
	Increment(ctx context.Context, provider usage.Provider) error
}

// CacheReader probes the restaurant cache by name fragment.
type CacheReader interface {
	FindByName(ctx context.Context, name string, limit int) ([]*dishes.CachedRestaurant, error)
}

// GeoProvider is the location-only fallback tier.
type GeoProvider interface {
	SearchNearby(ctx context.Context, query string, lat, lng *float64) []providers.Candidate
}

// Result is either a fresh cache entry (Cached set, FromCache true) or a
// live provider candidate. NeedsExtraction is true when the candidate
// carries reviews worth running through dish extraction.
type Result struct {
	Candidate       *providers.Candidate
	Cached          *dishes.CachedRestaurant
	FromCache       bool
	NeedsExtraction bool
}

type Service struct {
	cache   CacheReader
	quota   QuotaGate
	yelp    providers.Provider
	google  providers.Provider
	geo     GeoProvider
	nowFunc func() time.Time
}

func NewService(
	cache CacheReader,
	quota QuotaGate,
	yelp providers.Provider,
	google providers.Provider,
	geo GeoProvider,
) *Service {
	return &Service{
		cache:   cache,
		quota:   quota,
		yelp:    yelp,
		google:  google,
		geo:     geo,
		nowFunc: time.Now,
	}
}

// Search resolves a free-text restaurant query through a fixed provider
// chain: cache probe, then yelp, then google places, then geoapify. The
// review tiers are quota-gated and only win with at least one review; the
// first winner short-circuits the chain. The ordering is deliberate and not
// configurable: richer review text and cheaper quota first, pure geocoding
// last. A nil, nil return means nothing matched anywhere.
func (s *Service) Search(
	ctx context.Context,
	query string,
	lat *float64,
	lng *float64,
) (*Result, error) {

	cached, err := s.cache.FindByName(ctx, query, 5)
	if err != nil {
		return nil, err
	}
	now := s.nowFunc()
	for _, entry := range cached {
		if entry.Fresh(now) {
			return &Result{Cached: entry, FromCache: true}, nil
		}
	}

	location, name := splitQuery(query)

	for _, tier := range []struct {
		quota    usage.Provider
		provider providers.Provider
	}{
		{usage.ProviderYelp, s.yelp},
		{usage.ProviderGoogle, s.google},
	} {
		ok, err := s.quota.CanCall(ctx, tier.quota)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if err := s.quota.Increment(ctx, tier.quota); err != nil {
			return nil, err
		}

		candidate := tier.provider.Search(ctx, name, location)
		if candidate != nil && len(candidate.Reviews) > 0 {
			return &Result{Candidate: candidate, NeedsExtraction: true}, nil
		}
	}

	// Location-only fallback: no quota gate, never any reviews, so
	// downstream extraction is skipped by construction.
	geoResults := s.geo.SearchNearby(ctx, query, lat, lng)
	if len(geoResults) > 0 {
		return &Result{Candidate: &geoResults[0]}, nil
	}

	return nil, nil
}

// splitQuery treats the first whitespace-delimited token as the location and
// the remainder as the restaurant name, e.g. "Tokyo Sushi Dai" becomes
// ("Tokyo", "Sushi Dai"); single-token queries use the whole query for both.
// Multi-word locations misparse under this rule. Kept as-is: changing it
// changes which restaurants the providers return.
func splitQuery(query string) (location, name string) {
	parts := strings.Fields(query)
	if len(parts) > 1 {
		return parts[0], strings.Join(parts[1:], " ")
	}
	return query, query
}
