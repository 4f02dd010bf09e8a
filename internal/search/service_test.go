package search

import (
	"context"
	"testing"
	"time"

	"github.com/techhub668/menu-decoder/internal/dishes"
	"github.com/techhub668/menu-decoder/internal/providers"
	"github.com/techhub668/menu-decoder/internal/usage"
)

// --------------------------------------------------
// Stubs
// --------------------------------------------------

type stubProvider struct {
	result *providers.Candidate
	calls  int
}

func (s *stubProvider) Search(ctx context.Context, name, location string) *providers.Candidate {
	s.calls++
	return s.result
}

type stubGeo struct {
	results []providers.Candidate
	calls   int
}

func (s *stubGeo) SearchNearby(ctx context.Context, query string, lat, lng *float64) []providers.Candidate {
	s.calls++
	return s.results
}

type stubCache struct {
	entries []*dishes.CachedRestaurant
}

func (s *stubCache) FindByName(ctx context.Context, name string, limit int) ([]*dishes.CachedRestaurant, error) {
	return s.entries, nil
}

type stubGate struct {
	denied     map[usage.Provider]bool
	increments map[usage.Provider]int
}

func newStubGate() *stubGate {
	return &stubGate{
		denied:     make(map[usage.Provider]bool),
		increments: make(map[usage.Provider]int),
	}
}

func (g *stubGate) CanCall(ctx context.Context, provider usage.Provider) (bool, error) {
	return !g.denied[provider], nil
}

func (g *stubGate) Increment(ctx context.Context, provider usage.Provider) error {
	g.increments[provider]++
	return nil
}

func withReviews(source string, reviews ...string) *providers.Candidate {
	return &providers.Candidate{
		PlaceID: source + "_id",
		Name:    "Sushi Dai",
		Reviews: reviews,
		Source:  source,
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestSearch_Tier1ShortCircuits(t *testing.T) {
	yelp := &stubProvider{result: withReviews("yelp", "great sushi")}
	google := &stubProvider{result: withReviews("google", "nice place")}
	geo := &stubGeo{}
	gate := newStubGate()
	service := NewService(&stubCache{}, gate, yelp, google, geo)

	result, err := service.Search(context.Background(), "Tokyo Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Candidate.Source != "yelp" {
		t.Errorf("expected yelp result, got %s", result.Candidate.Source)
	}
	if !result.NeedsExtraction {
		t.Error("expected needsExtraction for a reviewed candidate")
	}
	if google.calls != 0 {
		t.Error("tier 2 must not be attempted after tier 1 success")
	}
	if geo.calls != 0 {
		t.Error("tier 3 must not be attempted after tier 1 success")
	}
	if gate.increments[usage.ProviderGoogle] != 0 {
		t.Error("google quota must not be consumed on tier 1 success")
	}
}

func TestSearch_ZeroReviewsFallsThrough(t *testing.T) {
	yelp := &stubProvider{result: withReviews("yelp")} // found, but no reviews
	google := &stubProvider{result: withReviews("google", "good ramen")}
	geo := &stubGeo{}
	gate := newStubGate()
	service := NewService(&stubCache{}, gate, yelp, google, geo)

	result, err := service.Search(context.Background(), "Tokyo Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if yelp.calls != 1 {
		t.Error("expected tier 1 to be attempted first")
	}
	if result.Candidate.Source != "google" {
		t.Errorf("expected google result, got %s", result.Candidate.Source)
	}
	if geo.calls != 0 {
		t.Error("tier 3 must not run when tier 2 yields reviews")
	}
}

func TestSearch_OverQuotaTierSkippedWithoutSpend(t *testing.T) {
	yelp := &stubProvider{result: withReviews("yelp", "great sushi")}
	google := &stubProvider{result: withReviews("google", "nice place")}
	gate := newStubGate()
	gate.denied[usage.ProviderYelp] = true
	service := NewService(&stubCache{}, gate, yelp, google, &stubGeo{})

	result, err := service.Search(context.Background(), "Tokyo Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if yelp.calls != 0 {
		t.Error("over-quota tier must not be called")
	}
	if gate.increments[usage.ProviderYelp] != 0 {
		t.Error("over-quota tier must not consume quota")
	}
	if result.Candidate.Source != "google" {
		t.Errorf("expected fallback to google, got %s", result.Candidate.Source)
	}
	if gate.increments[usage.ProviderGoogle] != 1 {
		t.Errorf("expected google quota consumed once, got %d", gate.increments[usage.ProviderGoogle])
	}
}

func TestSearch_GeoapifyFallback(t *testing.T) {
	yelp := &stubProvider{}
	google := &stubProvider{}
	geo := &stubGeo{results: []providers.Candidate{{
		PlaceID: "geo_1",
		Name:    "Sushi Dai",
		Reviews: []string{},
		Source:  "geoapify",
	}}}
	gate := newStubGate()
	service := NewService(&stubCache{}, gate, yelp, google, geo)

	result, err := service.Search(context.Background(), "Tokyo Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if yelp.calls != 1 || google.calls != 1 {
		t.Error("review tiers must be attempted before the geo fallback")
	}
	if result.Candidate.Source != "geoapify" {
		t.Errorf("expected geoapify result, got %s", result.Candidate.Source)
	}
	if result.NeedsExtraction {
		t.Error("geo-only results must not request extraction")
	}
}

func TestSearch_NoMatchAnywhere(t *testing.T) {
	service := NewService(&stubCache{}, newStubGate(), &stubProvider{}, &stubProvider{}, &stubGeo{})

	result, err := service.Search(context.Background(), "Nowhere Nothing", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}

func TestSearch_FreshCacheEntryWins(t *testing.T) {
	yelp := &stubProvider{result: withReviews("yelp", "great sushi")}
	cache := &stubCache{entries: []*dishes.CachedRestaurant{{
		PlaceID:     "yelp_abc",
		Name:        "Sushi Dai",
		TopDishes:   []dishes.TopDish{{Name: "Omakase", Mentions: 9}},
		LastUpdated: time.Now().Add(-time.Hour),
	}}}
	gate := newStubGate()
	service := NewService(cache, gate, yelp, &stubProvider{}, &stubGeo{})

	result, err := service.Search(context.Background(), "Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.FromCache {
		t.Error("expected cache hit")
	}
	if result.Cached.PlaceID != "yelp_abc" {
		t.Errorf("unexpected cached entry: %+v", result.Cached)
	}
	if yelp.calls != 0 {
		t.Error("no provider should be called on a cache hit")
	}
	if gate.increments[usage.ProviderYelp] != 0 {
		t.Error("no quota should be consumed on a cache hit")
	}
}

func TestSearch_StaleCacheEntryIgnored(t *testing.T) {
	yelp := &stubProvider{result: withReviews("yelp", "great sushi")}
	cache := &stubCache{entries: []*dishes.CachedRestaurant{{
		PlaceID:     "yelp_abc",
		Name:        "Sushi Dai",
		LastUpdated: time.Now().Add(-31 * 24 * time.Hour),
	}}}
	service := NewService(cache, newStubGate(), yelp, &stubProvider{}, &stubGeo{})

	result, err := service.Search(context.Background(), "Sushi Dai", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FromCache {
		t.Error("stale entry must be treated as a miss")
	}
	if yelp.calls != 1 {
		t.Error("expected provider chain to run past a stale entry")
	}
}

func TestSplitQuery(t *testing.T) {
	location, name := splitQuery("Tokyo Sushi Dai")
	if location != "Tokyo" || name != "Sushi Dai" {
		t.Errorf("got (%q, %q)", location, name)
	}

	location, name = splitQuery("Ippudo")
	if location != "Ippudo" || name != "Ippudo" {
		t.Errorf("got (%q, %q)", location, name)
	}
}
