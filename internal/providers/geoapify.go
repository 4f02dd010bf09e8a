package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
)

const geoapifyBaseURL = "https://api.geoapify.com"

// GeoapifyProvider is the geocoding-only fallback tier. It never returns
// reviews, so downstream dish extraction is skipped by construction.
type GeoapifyProvider struct {
	apiKey  string
	baseURL string
}

func NewGeoapifyProvider() *GeoapifyProvider {
	return &GeoapifyProvider{
		apiKey:  os.Getenv("GEOAPIFY_KEY"),
		baseURL: geoapifyBaseURL,
	}
}

type geoapifyFeature struct {
	Properties struct {
		PlaceID   string  `json:"place_id"`
		Name      string  `json:"name"`
		Formatted string  `json:"formatted"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
	} `json:"properties"`
}

// SearchNearby runs a circle-filtered places search around (lat, lng) when
// coordinates are given, otherwise a free-text geocode search on the query.
func (g *GeoapifyProvider) SearchNearby(
	ctx context.Context,
	query string,
	lat *float64,
	lng *float64,
) []Candidate {

	if g.apiKey == "" {
		return nil
	}

	var reqURL string
	if lat != nil && lng != nil {
		reqURL = fmt.Sprintf(
			"%s/v2/places?categories=catering.restaurant&filter=circle:%f,%f,5000&limit=5&apiKey=%s",
			g.baseURL, *lng, *lat, g.apiKey,
		)
	} else {
		reqURL = fmt.Sprintf(
			"%s/v1/geocode/search?text=%s&type=amenity&limit=5&apiKey=%s",
			g.baseURL, url.QueryEscape(query), g.apiKey,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var data struct {
		Features []geoapifyFeature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil
	}

	candidates := make([]Candidate, 0, len(data.Features))
	for _, f := range data.Features {
		placeID := f.Properties.PlaceID
		if placeID == "" {
			// synthetic id for results Geoapify does not identify
			placeID = "geo_" + uuid.NewString()
		}

		name := f.Properties.Name
		if name == "" {
			name = query
		}

		candidates = append(candidates, Candidate{
			PlaceID: placeID,
			Name:    name,
			Address: f.Properties.Formatted,
			Lat:     f.Properties.Lat,
			Lng:     f.Properties.Lon,
			Reviews: []string{},
			Source:  "geoapify",
		})
	}

	return candidates
}
