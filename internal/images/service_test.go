package images

import (
	"context"
	"strings"
	"testing"
)

func TestSearchImage_MissingKeyReturnsEmpty(t *testing.T) {
	unsplash := &UnsplashClient{accessKey: ""}
	service := NewService(unsplash, nil)

	if got := service.SearchImage(context.Background(), "Japanese Ramen"); got != "" {
		t.Errorf("expected empty URL without credentials, got %q", got)
	}
}

func TestObjectKey_Sanitized(t *testing.T) {
	key := objectKey("Japanese Tonkotsu Ramen!!")

	if !strings.HasPrefix(key, "dishes/japanese-tonkotsu-ramen") {
		t.Errorf("unexpected key prefix: %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("expected .jpg suffix: %q", key)
	}
	if strings.Contains(key, "!") || strings.Contains(key, " ") {
		t.Errorf("key not sanitized: %q", key)
	}
}

func TestObjectKey_EmptyQuery(t *testing.T) {
	key := objectKey("")
	if !strings.HasPrefix(key, "dishes/dish-") {
		t.Errorf("expected fallback slug, got %q", key)
	}
}
