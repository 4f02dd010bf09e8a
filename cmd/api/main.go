package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/techhub668/menu-decoder/internal/cuisine"
	"github.com/techhub668/menu-decoder/internal/db"
	"github.com/techhub668/menu-decoder/internal/dishes"
	"github.com/techhub668/menu-decoder/internal/images"
	"github.com/techhub668/menu-decoder/internal/llm"
	"github.com/techhub668/menu-decoder/internal/providers"
	"github.com/techhub668/menu-decoder/internal/search"
	"github.com/techhub668/menu-decoder/internal/usage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Provider keys (YELP_API_KEY, GOOGLE_PLACES_KEY, GEOAPIFY_KEY,
	// UNSPLASH_KEY, R2_*) are optional: a missing key turns that adapter
	// into a no-result tier instead of an error.
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

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── IMAGES ─────────────────────────
	var r2Client *images.R2Client
	if os.Getenv("R2_ENDPOINT") != "" {
		var err error
		r2Client, err = images.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
	}
	imageService := images.NewService(images.NewUnsplashClient(), r2Client)

	// ───────────────────────── CORE REPOS ─────────────────────────
	usageRepo := usage.NewPostgresRepository(pgDB)
	restaurantCacheRepo := dishes.NewPostgresRepository(pgDB)
	cuisineRepo := cuisine.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	limiter := usage.NewLimiter(usageRepo)
	llmClient := llm.NewOpenRouterClient()

	dishService := dishes.NewService(restaurantCacheRepo, llmClient, limiter)
	cuisineService := cuisine.NewService(cuisineRepo, llmClient, limiter, imageService)

	searchService := search.NewService(
		restaurantCacheRepo,
		limiter,
		providers.NewYelpProvider(),
		providers.NewGooglePlacesProvider(),
		providers.NewGeoapifyProvider(),
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	usageHandler := usage.NewHandler(limiter)
	dishHandler := dishes.NewHandler(dishService)
	cuisineHandler := cuisine.NewHandler(cuisineService)
	searchHandler := search.NewHandler(searchService)

	// ───────────────────────── ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/cuisine", cuisineHandler.Lookup)
		api.GET("/search-restaurant", searchHandler.Search)
		api.POST("/extract-dishes", dishHandler.Extract)
		api.GET("/usage", usageHandler.GetSummary)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
