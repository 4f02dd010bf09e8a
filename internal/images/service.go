package images

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var keyUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// Service is the best-effort image lookup: Unsplash search first, then an
// optional mirror into R2. Every failure degrades to the previous URL or an
// empty string, never an error.
type Service struct {
	unsplash *UnsplashClient
	mirror   *R2Client
}

func NewService(unsplash *UnsplashClient, mirror *R2Client) *Service {
	return &Service{unsplash: unsplash, mirror: mirror}
}

func (s *Service) SearchImage(ctx context.Context, query string) string {
	imageURL := s.unsplash.SearchImage(ctx, query)
	if imageURL == "" || s.mirror == nil {
		return imageURL
	}

	key := objectKey(query)
	mirrored, err := s.mirror.MirrorURL(ctx, key, imageURL)
	if err != nil {
		return imageURL
	}

	return mirrored
}

func objectKey(query string) string {
	slug := keyUnsafe.ReplaceAllString(strings.ToLower(query), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "dish"
	}
	return fmt.Sprintf("dishes/%s-%s.jpg", slug, uuid.NewString()[:8])
}
