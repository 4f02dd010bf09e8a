package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const unsplashBaseURL = "https://api.unsplash.com"

type UnsplashClient struct {
	accessKey string
	baseURL   string
	client    *http.Client
}

func NewUnsplashClient() *UnsplashClient {
	return &UnsplashClient{
		accessKey: os.Getenv("UNSPLASH_KEY"),
		baseURL:   unsplashBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchImage returns the regular-size URL of the first photo matching the
// query, or an empty string on any failure. It never errors: image lookup
// must not take down the enclosing operation.
func (u *UnsplashClient) SearchImage(ctx context.Context, query string) string {
	if u.accessKey == "" {
		return ""
	}

	reqURL := fmt.Sprintf(
		"%s/search/photos?query=%s&per_page=1&orientation=squarish",
		u.baseURL,
		url.QueryEscape(query+" food dish"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var data struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ""
	}

	if len(data.Results) == 0 {
		return ""
	}

	return data.Results[0].URLs.Regular
}
