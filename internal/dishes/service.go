package dishes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/techhub668/menu-decoder/internal/llm"
	"github.com/techhub668/menu-decoder/internal/usage"
)

// maxReviews caps how much review text is fed to the model; anything
// beyond it is truncated silently.
const maxReviews = 20

// QuotaGate is the slice of the usage limiter this service needs.
type QuotaGate interface {
	CanCall(ctx context.Context, provider usage.Provider) (bool, error)
	Increment(ctx context.Context, provider usage.Provider) error
}

type ExtractRequest struct {
	PlaceID  string   `json:"placeId"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	ImageURL string   `json:"imageUrl"`
	Reviews  []string `json:"reviews"`
	Source   string   `json:"source"`
}

type ExtractResult struct {
	TopDishes    []TopDish
	FromCache    bool
	LimitReached bool
	NoReviews    bool
	Source       string
}

type Service struct {
	repo    Repository
	llm     llm.Client
	quota   QuotaGate
	nowFunc func() time.Time
}

func NewService(repo Repository, llmClient llm.Client, quota QuotaGate) *Service {
	return &Service{
		repo:    repo,
		llm:     llmClient,
		quota:   quota,
		nowFunc: time.Now,
	}
}

// ExtractTopDishes turns a restaurant's reviews into a ranked dish list,
// serving from the cache when a fresh entry exists and gating the LLM call
// on the daily quota. An LLM failure or unparsable output fails the whole
// operation; nothing is cached in that case.
func (s *Service) ExtractTopDishes(
	ctx context.Context,
	req *ExtractRequest,
) (*ExtractResult, error) {

	if len(req.Reviews) == 0 {
		return &ExtractResult{TopDishes: []TopDish{}, NoReviews: true}, nil
	}

	now := s.nowFunc()

	if req.PlaceID != "" {
		cached, err := s.repo.Get(ctx, req.PlaceID)
		if err != nil {
			return nil, err
		}
		if cached != nil && cached.Fresh(now) && len(cached.TopDishes) > 0 {
			return &ExtractResult{
				TopDishes: cached.TopDishes,
				FromCache: true,
				Source:    req.Source,
			}, nil
		}
	}

	ok, err := s.quota.CanCall(ctx, usage.ProviderLLM)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ExtractResult{TopDishes: []TopDish{}, LimitReached: true}, nil
	}

	if err := s.quota.Increment(ctx, usage.ProviderLLM); err != nil {
		return nil, err
	}

	reviews := req.Reviews
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}

	raw, err := s.llm.Complete(
		ctx,
		extractionSystemPrompt,
		buildExtractionUserPrompt(req.Name, req.Address, reviews),
	)
	if err != nil {
		return nil, err
	}

	var topDishes []TopDish
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &topDishes); err != nil {
		return nil, errors.New("invalid dish extraction output")
	}

	if req.PlaceID != "" {
		entry := &CachedRestaurant{
			PlaceID:     req.PlaceID,
			Name:        req.Name,
			Address:     req.Address,
			Lat:         req.Lat,
			Lng:         req.Lng,
			TopDishes:   topDishes,
			Reviews:     reviews,
			ImageURL:    req.ImageURL,
			LastUpdated: now,
		}
		if err := s.repo.Upsert(ctx, entry); err != nil {
			return nil, err
		}
	}

	source := req.Source
	if source == "" {
		source = "unknown"
	}

	return &ExtractResult{
		TopDishes: topDishes,
		FromCache: false,
		Source:    source,
	}, nil
}
