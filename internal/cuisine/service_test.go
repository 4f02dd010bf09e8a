package cuisine

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/techhub668/menu-decoder/internal/usage"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	dishes  map[string]*GenericDish
	upserts int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{dishes: make(map[string]*GenericDish)}
}

func dishKey(cuisine, name, langCode string) string {
	return cuisine + "|" + name + "|" + langCode
}

func (m *MockRepository) Find(ctx context.Context, cuisine, langCode string) ([]*GenericDish, error) {
	var out []*GenericDish
	for _, d := range m.dishes {
		if d.Cuisine == cuisine && d.PrefLangCode == langCode {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MockRepository) Count(ctx context.Context, cuisine, langCode string) (int, error) {
	found, _ := m.Find(ctx, cuisine, langCode)
	return len(found), nil
}

func (m *MockRepository) Upsert(ctx context.Context, dish *GenericDish) error {
	m.upserts++
	m.dishes[dishKey(dish.Cuisine, dish.DishName, dish.PrefLangCode)] = dish
	return nil
}

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeLLM struct {
	output string
	calls  int
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	return f.output, nil
}

type fakeGate struct {
	allow      bool
	increments int
}

func (g *fakeGate) CanCall(ctx context.Context, provider usage.Provider) (bool, error) {
	return g.allow, nil
}

func (g *fakeGate) Increment(ctx context.Context, provider usage.Provider) error {
	g.increments++
	return nil
}

type fakeImages struct {
	url   string
	calls int
}

func (f *fakeImages) SearchImage(ctx context.Context, query string) string {
	f.calls++
	return f.url
}

func japaneseDishJSON(n int) string {
	dishes := make([]map[string]string, n)
	for i := range dishes {
		dishes[i] = map[string]string{
			"dishName":    fmt.Sprintf("料理%d", i+1),
			"origLang":    fmt.Sprintf("料理%d", i+1),
			"engLang":     fmt.Sprintf("Dish %d", i+1),
			"prefLang":    fmt.Sprintf("Dish %d", i+1),
			"ingredients": "rice, fish",
			"taste":       "savory",
			"eatMethod":   "with chopsticks",
			"sauces":      "soy sauce",
			"avgPrice":    "$10-15",
		}
	}
	b, _ := json.Marshal(dishes)
	return string(b)
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestLookup_GeneratesAndCaches(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: japaneseDishJSON(12)}
	gate := &fakeGate{allow: true}
	imgs := &fakeImages{url: "https://images.example/ramen.jpg"}
	service := NewService(repo, client, gate, imgs)
	ctx := context.Background()

	result, err := service.Lookup(ctx, "Japanese", "English", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FromCache {
		t.Error("expected fromCache=false on first call")
	}
	if len(result.Dishes) != 12 {
		t.Fatalf("expected 12 dishes, got %d", len(result.Dishes))
	}
	if repo.upserts != 12 {
		t.Errorf("expected 12 upserts, got %d", repo.upserts)
	}
	if gate.increments != 1 {
		t.Errorf("expected 1 quota increment, got %d", gate.increments)
	}
	if result.Dishes[0].ImageURL == "" {
		t.Error("expected dishes to be enriched with image URLs")
	}
}

func TestLookup_CacheHitIdempotence(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: japaneseDishJSON(12)}
	gate := &fakeGate{allow: true}
	service := NewService(repo, client, gate, &fakeImages{})
	ctx := context.Background()

	first, err := service.Lookup(ctx, "Japanese", "English", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := service.Lookup(ctx, "Japanese", "English", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.FromCache {
		t.Error("expected second call to be a cache hit")
	}
	if len(second.Dishes) != len(first.Dishes) {
		t.Errorf("expected %d dishes on cache hit, got %d", len(first.Dishes), len(second.Dishes))
	}
	if client.calls != 1 {
		t.Errorf("expected exactly 1 LLM call across both lookups, got %d", client.calls)
	}
	if gate.increments != 1 {
		t.Errorf("expected no extra quota on cache hit, got %d increments", gate.increments)
	}
}

func TestLookup_LanguageIsolation(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: japaneseDishJSON(10)}
	gate := &fakeGate{allow: true}
	service := NewService(repo, client, gate, &fakeImages{})
	ctx := context.Background()

	if _, err := service.Lookup(ctx, "Japanese", "English", "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Different language code: the en rows must not satisfy this lookup.
	result, err := service.Lookup(ctx, "Japanese", "French", "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FromCache {
		t.Error("expected fr lookup to miss the en cache")
	}
	if client.calls != 2 {
		t.Errorf("expected 2 LLM calls, got %d", client.calls)
	}
}

func TestLookup_QuotaExhausted(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: japaneseDishJSON(12)}
	gate := &fakeGate{allow: false}
	service := NewService(repo, client, gate, &fakeImages{})

	result, err := service.Lookup(context.Background(), "Thai", "English", "en")
	if err != nil {
		t.Fatalf("expected soft failure, got error: %v", err)
	}

	if !result.LimitReached {
		t.Error("expected limitReached")
	}
	if len(result.Dishes) != 0 {
		t.Error("expected empty dish list")
	}
	if client.calls != 0 {
		t.Error("expected no LLM call when quota is exhausted")
	}
}

func TestLookup_DishNameFallsBackToEnglish(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: `[
		{"dishName":"","origLang":"","engLang":"Green Curry","prefLang":"Green Curry",
		 "ingredients":"coconut milk","taste":"spicy","eatMethod":"with rice",
		 "sauces":"fish sauce","avgPrice":"$12"}
	]`}
	gate := &fakeGate{allow: true}
	service := NewService(repo, client, gate, &fakeImages{})

	result, err := service.Lookup(context.Background(), "Thai", "English", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Dishes[0].DishName != "Green Curry" {
		t.Errorf("expected English-name fallback, got %q", result.Dishes[0].DishName)
	}
	if _, ok := repo.dishes[dishKey("Thai", "Green Curry", "en")]; !ok {
		t.Error("expected dish stored under fallback key")
	}
}

func TestLookup_ImageFailureDoesNotAbortDish(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: japaneseDishJSON(3)}
	gate := &fakeGate{allow: true}
	service := NewService(repo, client, gate, &fakeImages{url: ""})

	result, err := service.Lookup(context.Background(), "Japanese", "English", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Dishes) != 3 {
		t.Fatalf("expected 3 dishes despite image failures, got %d", len(result.Dishes))
	}
	for _, d := range result.Dishes {
		if d.ImageURL != "" {
			t.Errorf("expected empty image URL, got %q", d.ImageURL)
		}
	}
}

func TestLookup_UnparsableOutput(t *testing.T) {
	repo := NewMockRepository()
	client := &fakeLLM{output: "Sorry, I can only describe dishes in prose."}
	gate := &fakeGate{allow: true}
	service := NewService(repo, client, gate, &fakeImages{})

	_, err := service.Lookup(context.Background(), "Greek", "English", "en")
	if err == nil {
		t.Fatal("expected error for unparsable output")
	}
	if repo.upserts != 0 {
		t.Error("expected no rows written on parse failure")
	}
}
