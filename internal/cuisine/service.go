package cuisine

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/techhub668/menu-decoder/internal/llm"
	"github.com/techhub668/menu-decoder/internal/usage"
)

// QuotaGate is the slice of the usage limiter this service needs.
type QuotaGate interface {
	CanCall(ctx context.Context, provider usage.Provider) (bool, error)
	Increment(ctx context.Context, provider usage.Provider) error
}

// ImageSearcher resolves a free-text query to an image URL, empty on failure.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) string
}

type LookupResult struct {
	Dishes       []*GenericDish
	FromCache    bool
	LimitReached bool
}

// parsedDish is the shape the model is prompted to return.
type parsedDish struct {
	DishName    string `json:"dishName"`
	OrigLang    string `json:"origLang"`
	EngLang     string `json:"engLang"`
	PrefLang    string `json:"prefLang"`
	Ingredients string `json:"ingredients"`
	Taste       string `json:"taste"`
	EatMethod   string `json:"eatMethod"`
	Sauces      string `json:"sauces"`
	AvgPrice    string `json:"avgPrice"`
}

type Service struct {
	repo   Repository
	llm    llm.Client
	quota  QuotaGate
	images ImageSearcher
}

func NewService(
	repo Repository,
	llmClient llm.Client,
	quota QuotaGate,
	images ImageSearcher,
) *Service {
	return &Service{
		repo:   repo,
		llm:    llmClient,
		quota:  quota,
		images: images,
	}
}

// Lookup returns the signature dishes of a cuisine localized for langCode.
// Stored rows win outright; otherwise one quota-gated LLM call generates
// the set, each dish gets a best-effort image, and everything is upserted
// keyed by (cuisine, dish name, langCode). A dish missing its native name
// falls back to the English name as the key component.
func (s *Service) Lookup(
	ctx context.Context,
	cuisine string,
	language string,
	langCode string,
) (*LookupResult, error) {

	cached, err := s.repo.Find(ctx, cuisine, langCode)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		return &LookupResult{Dishes: cached, FromCache: true}, nil
	}

	ok, err := s.quota.CanCall(ctx, usage.ProviderLLM)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &LookupResult{Dishes: []*GenericDish{}, LimitReached: true}, nil
	}

	if err := s.quota.Increment(ctx, usage.ProviderLLM); err != nil {
		return nil, err
	}

	raw, err := s.llm.Complete(
		ctx,
		catalogSystemPrompt,
		buildCatalogUserPrompt(cuisine, language),
	)
	if err != nil {
		return nil, err
	}

	var parsed []parsedDish
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &parsed); err != nil {
		return nil, errors.New("invalid cuisine catalog output")
	}

	saved := make([]*GenericDish, 0, len(parsed))
	for _, p := range parsed {
		dishName := p.DishName
		if dishName == "" {
			dishName = p.EngLang
		}

		imageURL := s.images.SearchImage(ctx, cuisine+" "+p.EngLang)

		dish := &GenericDish{
			Cuisine:      cuisine,
			DishName:     dishName,
			OrigLang:     p.OrigLang,
			EngLang:      p.EngLang,
			PrefLang:     p.PrefLang,
			PrefLangCode: langCode,
			Ingredients:  p.Ingredients,
			Taste:        p.Taste,
			EatMethod:    p.EatMethod,
			Sauces:       p.Sauces,
			AvgPrice:     p.AvgPrice,
			ImageURL:     imageURL,
		}

		if err := s.repo.Upsert(ctx, dish); err != nil {
			return nil, err
		}
		saved = append(saved, dish)
	}

	return &LookupResult{Dishes: saved, FromCache: false}, nil
}
