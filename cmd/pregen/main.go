package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/techhub668/menu-decoder/internal/cuisine"
	"github.com/techhub668/menu-decoder/internal/db"
	"github.com/techhub668/menu-decoder/internal/images"
	"github.com/techhub668/menu-decoder/internal/llm"
	"github.com/techhub668/menu-decoder/internal/usage"

	"github.com/joho/godotenv"
)

// minCachedDishes is the "fully populated" threshold: a cuisine with at
// least this many cached rows is skipped. Arbitrary operational knob, not a
// cache-completeness rule, hence the flag override.
const minCachedDishes = 5

// pacingDelay spaces out successive generation calls to respect upstream
// rate limits. Pacing only; there is no retry or backoff.
const pacingDelay = 2 * time.Second

var cuisines = []string{
	"Japanese",
	"Chinese",
	"Korean",
	"Thai",
	"Vietnamese",
	"Indian",
	"Mexican",
	"Italian",
	"French",
	"Spanish / Tapas",
	"Greek",
	"Turkish",
	"Lebanese / Middle Eastern",
	"Moroccan",
	"Ethiopian",
	"Peruvian",
	"Brazilian",
	"American BBQ",
	"German",
	"Malaysian",
}

func main() {
	minDishes := flag.Int("min", minCachedDishes, "skip cuisines with at least this many cached dishes")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"OPENROUTER_API_KEY",
		"OPENROUTER_MODEL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	cuisineRepo := cuisine.NewPostgresRepository(pgDB)
	limiter := usage.NewLimiter(usage.NewPostgresRepository(pgDB))
	imageService := images.NewService(images.NewUnsplashClient(), nil)
	service := cuisine.NewService(cuisineRepo, llm.NewOpenRouterClient(), limiter, imageService)

	ctx := context.Background()

	log.Println("Starting pre-generation of cuisine data...")

	for _, name := range cuisines {
		existing, err := cuisineRepo.Count(ctx, name, "en")
		if err != nil {
			log.Fatal("Count query failed:", err)
		}

		if existing >= *minDishes {
			log.Printf("[SKIP] %s — already has %d dishes cached.", name, existing)
			continue
		}

		log.Printf("[GENERATING] %s...", name)

		result, err := service.Lookup(ctx, name, "English", "en")
		if err != nil {
			log.Printf("[ERROR] %s: %v", name, err)
			continue
		}

		if result.LimitReached {
			log.Println("[STOP] Daily LLM quota exhausted.")
			break
		}

		log.Printf("[DONE] %s — saved %d dishes.", name, len(result.Dishes))

		time.Sleep(pacingDelay)
	}

	log.Println("Pre-generation complete!")
}
