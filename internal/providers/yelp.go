package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const yelpBaseURL = "https://api.yelp.com/v3"

type YelpProvider struct {
	apiKey  string
	baseURL string
}

func NewYelpProvider() *YelpProvider {
	return &YelpProvider{
		apiKey:  os.Getenv("YELP_API_KEY"),
		baseURL: yelpBaseURL,
	}
}

type yelpBusiness struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
}

// Search picks the first business matching (name, location) and attaches up
// to 20 reviews sorted by relevance. A failed reviews fetch degrades to an
// empty review list rather than discarding the business.
func (y *YelpProvider) Search(ctx context.Context, name, location string) *Candidate {
	if y.apiKey == "" {
		return nil
	}

	searchURL := fmt.Sprintf(
		"%s/businesses/search?term=%s&location=%s&limit=1&categories=restaurants",
		y.baseURL,
		url.QueryEscape(name),
		url.QueryEscape(location),
	)

	var searchData struct {
		Businesses []yelpBusiness `json:"businesses"`
	}
	if err := y.getJSON(ctx, searchURL, &searchData); err != nil {
		return nil
	}
	if len(searchData.Businesses) == 0 {
		return nil
	}
	biz := searchData.Businesses[0]

	reviewURL := fmt.Sprintf(
		"%s/businesses/%s/reviews?limit=20&sort_by=relevance",
		y.baseURL,
		url.PathEscape(biz.ID),
	)

	var reviewData struct {
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
	}
	// best effort; the business itself is still usable
	_ = y.getJSON(ctx, reviewURL, &reviewData)

	reviews := make([]string, 0, len(reviewData.Reviews))
	for _, r := range reviewData.Reviews {
		reviews = append(reviews, r.Text)
	}

	return &Candidate{
		PlaceID:  "yelp_" + biz.ID,
		Name:     biz.Name,
		Address:  strings.Join(biz.Location.DisplayAddress, ", "),
		Lat:      biz.Coordinates.Latitude,
		Lng:      biz.Coordinates.Longitude,
		ImageURL: biz.ImageURL,
		Reviews:  reviews,
		Source:   "yelp",
	}
}

func (y *YelpProvider) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+y.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yelp api status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
