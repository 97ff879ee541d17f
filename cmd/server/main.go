package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"trip-itinerary-service/internal/adapters/directions"
	"trip-itinerary-service/internal/adapters/places"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/adapters/textgen"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/platform/db"
	"trip-itinerary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Naver directions, Kakao places, OpenAI,
// SQL storage) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "data/app.db")
	port := config.Get("PORT", "8080")

	naverClientID := os.Getenv("NAVER_CLIENT_ID")
	naverClientSecret := os.Getenv("NAVER_CLIENT_SECRET")
	if strings.TrimSpace(naverClientID) == "" || strings.TrimSpace(naverClientSecret) == "" {
		log.Fatal("NAVER_CLIENT_ID and NAVER_CLIENT_SECRET are required")
	}

	kakaoKey := os.Getenv("KAKAO_API_KEY")
	if strings.TrimSpace(kakaoKey) == "" {
		log.Fatal("KAKAO_API_KEY is required")
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if strings.TrimSpace(openAIKey) == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	routeProvider, err := directions.NewNaverRouteProvider(naverClientID, naverClientSecret)
	if err != nil {
		log.Fatal(err)
	}

	placeSearcher, err := places.NewKakaoPlaceSearcher(kakaoKey)
	if err != nil {
		log.Fatal(err)
	}

	textGen, err := textgen.NewOpenAIClient(openAIKey, config.Get("OPENAI_MODEL", ""))
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLItineraryRepository(database)

	// One routing call per 100ms keeps the whole process under the
	// provider's rate limit across matrix passes and validations.
	pacer := services.NewLimiterPacer(100 * time.Millisecond)
	resolver := services.NewSegmentResolver(routeProvider)
	matrix := services.NewMatrixBuilder(resolver, pacer)

	router := api.NewRouter(placeSearcher, resolver, matrix, textGen, repo, pacer)

	// Timeouts are tuned for paced matrix building (many sequential
	// external calls per request).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
