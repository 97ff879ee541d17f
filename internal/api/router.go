package api

import (
	"net/http"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	places ports.PlaceSearcher,
	resolver *services.SegmentResolver,
	matrix *services.MatrixBuilder,
	textGen ports.TextGenerator,
	repo ports.ItineraryRepository,
	pacer services.Pacer,
) http.Handler {
	mux := http.NewServeMux()

	itineraryHandler := &handlers.ItineraryHandler{
		Places:  places,
		Matrix:  matrix,
		TextGen: textGen,
		Repo:    repo,
	}
	validateHandler := &handlers.ValidateHandler{
		Resolver: resolver,
		Pacer:    pacer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/itineraries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			itineraryHandler.List(w, r)
			return
		}
		itineraryHandler.Create(w, r)
	})
	mux.HandleFunc("/validate-stop", validateHandler.ValidateStop)

	return loggingMiddleware(mux)
}
