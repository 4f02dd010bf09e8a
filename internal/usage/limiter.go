package usage

import (
	"context"
	"time"
)

// Limiter tracks per-day call counters for the metered providers. It only
// reports whether a provider is still under its cap; callers decide whether
// to proceed, then increment separately. The resulting check-then-act race
// can overshoot the cap by one under concurrency, which is accepted.
type Limiter struct {
	repo Repository
}

func NewLimiter(repo Repository) *Limiter {
	return &Limiter{repo: repo}
}

// todayKey returns the UTC calendar date, e.g. "2026-08-30".
func todayKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

// CanCall reports whether today's counter for the provider is strictly
// below its daily cap.
func (l *Limiter) CanCall(ctx context.Context, provider Provider) (bool, error) {
	u, err := l.repo.GetOrCreate(ctx, todayKey())
	if err != nil {
		return false, err
	}
	return u.Calls(provider) < Limits[provider], nil
}

// Increment raises today's counter for the provider by one.
func (l *Limiter) Increment(ctx context.Context, provider Provider) error {
	return l.repo.Increment(ctx, todayKey(), provider)
}

// Summary returns used/limit for every provider for today.
func (l *Limiter) Summary(ctx context.Context) (*Summary, error) {
	u, err := l.repo.GetOrCreate(ctx, todayKey())
	if err != nil {
		return nil, err
	}

	return &Summary{
		Google: ProviderSummary{Used: u.GoogleCalls, Limit: Limits[ProviderGoogle]},
		Yelp:   ProviderSummary{Used: u.YelpCalls, Limit: Limits[ProviderYelp]},
		LLM:    ProviderSummary{Used: u.LLMCalls, Limit: Limits[ProviderLLM]},
	}, nil
}
