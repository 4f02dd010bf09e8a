package usage

// Provider identifies a metered external API.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderYelp   Provider = "yelp"
	ProviderLLM    Provider = "llm"
)

// Daily call caps per provider. Cost-control heuristics, not hard limits:
// the check and the increment are separate operations, so concurrent
// requests may overshoot by one.
var Limits = map[Provider]int{
	ProviderGoogle: 50,
	ProviderYelp:   450,
	ProviderLLM:    200,
}

// DailyUsage is one row of daily_api_usage, keyed by UTC date string.
type DailyUsage struct {
	Date        string
	GoogleCalls int
	YelpCalls   int
	LLMCalls    int
}

func (u *DailyUsage) Calls(provider Provider) int {
	switch provider {
	case ProviderGoogle:
		return u.GoogleCalls
	case ProviderYelp:
		return u.YelpCalls
	case ProviderLLM:
		return u.LLMCalls
	}
	return 0
}

type ProviderSummary struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

type Summary struct {
	Google ProviderSummary `json:"google"`
	Yelp   ProviderSummary `json:"yelp"`
	LLM    ProviderSummary `json:"llm"`
}
