package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

const googleBaseURL = "https://maps.googleapis.com/maps/api/place"

type GooglePlacesProvider struct {
	apiKey  string
	baseURL string
}

func NewGooglePlacesProvider() *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:  os.Getenv("GOOGLE_PLACES_KEY"),
		baseURL: googleBaseURL,
	}
}

type googlePlaceCandidate struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// Search uses the find-candidate-then-fetch-details pattern: one call to
// resolve the place, a second to pull its reviews. The image URL is composed
// from the photo endpoint, the photo reference token and the API key.
func (g *GooglePlacesProvider) Search(ctx context.Context, name, location string) *Candidate {
	if g.apiKey == "" {
		return nil
	}

	findURL := fmt.Sprintf(
		"%s/findplacefromtext/json?input=%s&inputtype=textquery&fields=place_id,name,formatted_address,geometry,photos,rating&key=%s",
		g.baseURL,
		url.QueryEscape(name+" "+location),
		g.apiKey,
	)

	var findData struct {
		Candidates []googlePlaceCandidate `json:"candidates"`
	}
	if err := g.getJSON(ctx, findURL, &findData); err != nil {
		return nil
	}
	if len(findData.Candidates) == 0 {
		return nil
	}
	place := findData.Candidates[0]

	detailURL := fmt.Sprintf(
		"%s/details/json?place_id=%s&fields=reviews&key=%s",
		g.baseURL,
		url.QueryEscape(place.PlaceID),
		g.apiKey,
	)

	var detailData struct {
		Result struct {
			Reviews []struct {
				Text string `json:"text"`
			} `json:"reviews"`
		} `json:"result"`
	}
	// best effort; the place itself is still usable
	_ = g.getJSON(ctx, detailURL, &detailData)

	reviews := make([]string, 0, len(detailData.Result.Reviews))
	for _, r := range detailData.Result.Reviews {
		reviews = append(reviews, r.Text)
	}

	imageURL := ""
	if len(place.Photos) > 0 && place.Photos[0].PhotoReference != "" {
		imageURL = fmt.Sprintf(
			"%s/photo?maxwidth=400&photo_reference=%s&key=%s",
			g.baseURL,
			place.Photos[0].PhotoReference,
			g.apiKey,
		)
	}

	return &Candidate{
		PlaceID:  "google_" + place.PlaceID,
		Name:     place.Name,
		Address:  place.FormattedAddress,
		Lat:      place.Geometry.Location.Lat,
		Lng:      place.Geometry.Location.Lng,
		ImageURL: imageURL,
		Reviews:  reviews,
		Source:   "google",
	}
}

func (g *GooglePlacesProvider) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google places status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
