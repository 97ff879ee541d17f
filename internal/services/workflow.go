package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// Discovery defaults tuned for a walkable day-trip radius.
const (
	discoveryRadiusMeters = 5000
	discoveryLimit        = 10
	discoverySortBy       = "distance"
)

type TripRequest struct {
	Destination string
	Point       domain.Coordinate
	Days        int
	Notes       string
}

type WorkflowDeps struct {
	Places  ports.PlaceSearcher
	Matrix  *MatrixBuilder
	TextGen ports.TextGenerator
	Repo    ports.ItineraryRepository
}

// RunWorkflow executes the end-to-end itinerary pipeline:
//
//  1. discover attractions near the destination (hard stop when empty)
//  2. discover restaurants, sorted ascending by reported distance
//  3. user -> attraction matrix
//  4. attraction x attraction matrix (self-excluded)
//  5. restaurant x attraction matrix
//  6. draft the plan through the text-generation collaborator and
//     persist the final record
//
// Stages run strictly one after another. The returned state is owned by
// the caller; nothing of it survives inside the engine.
func RunWorkflow(ctx context.Context, req TripRequest, deps WorkflowDeps) (_ *domain.ItineraryState, err error) {
	defer obs.Time(ctx, "workflow.Run")(&err)

	state := &domain.ItineraryState{
		Destination: req.Destination,
		Origin:      req.Point,
		Days:        req.Days,
	}

	if err := discoverAttractions(ctx, req, deps, state); err != nil {
		return nil, err
	}
	if err := discoverRestaurants(ctx, req, deps, state); err != nil {
		return nil, err
	}

	state.UserToPlaceMatrix, err = userMatrix(ctx, req, deps, state)
	if err != nil {
		return nil, fmt.Errorf("run workflow: user matrix: %w", err)
	}

	state.PlaceToPlaceMatrix, err = deps.Matrix.Build(ctx, state.Places, state.Places, true)
	if err != nil {
		return nil, fmt.Errorf("run workflow: place matrix: %w", err)
	}

	restaurantOrigins := make([]*domain.Place, 0, len(state.Restaurants))
	for _, r := range state.Restaurants {
		restaurantOrigins = append(restaurantOrigins, &r.Place)
	}
	state.RestaurantToPlaceMatrix, err = deps.Matrix.Build(ctx, restaurantOrigins, state.Places, false)
	if err != nil {
		return nil, fmt.Errorf("run workflow: restaurant matrix: %w", err)
	}

	state.DraftText, err = deps.TextGen.Complete(ctx, BuildPrompt(req, state), ports.SamplingParams{
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("run workflow: draft plan: %w", err)
	}

	rec := ports.ItineraryRecord{
		ID:          uuid.NewString(),
		Destination: req.Destination,
		DraftText:   state.DraftText,
		CreatedAt:   time.Now().UTC(),
	}
	if err := deps.Repo.SaveItinerary(ctx, rec); err != nil {
		return nil, fmt.Errorf("run workflow: save itinerary: %w", err)
	}
	state.RecordID = rec.ID

	return state, nil
}

func discoverAttractions(ctx context.Context, req TripRequest, deps WorkflowDeps, state *domain.ItineraryState) error {
	results, err := deps.Places.SearchNearby(ctx, ports.SearchNearbyParams{
		Point:        req.Point,
		CategoryCode: ports.CategoryAttraction,
		RadiusMeters: discoveryRadiusMeters,
		Limit:        discoveryLimit,
		SortBy:       discoverySortBy,
	})
	if err != nil {
		return fmt.Errorf("run workflow: search attractions: %w", err)
	}
	if len(results) == 0 {
		return &DiscoveryEmptyError{Kind: "attractions"}
	}

	state.Places = make([]*domain.Place, 0, len(results))
	for _, r := range results {
		state.Places = append(state.Places, &domain.Place{
			Name:       r.Name,
			Address:    r.Address,
			Coordinate: r.Point,
			ExternalID: r.ID,
		})
	}
	return nil
}

func discoverRestaurants(ctx context.Context, req TripRequest, deps WorkflowDeps, state *domain.ItineraryState) error {
	results, err := deps.Places.SearchNearby(ctx, ports.SearchNearbyParams{
		Point:        req.Point,
		CategoryCode: ports.CategoryRestaurant,
		RadiusMeters: discoveryRadiusMeters,
		Limit:        discoveryLimit,
		SortBy:       discoverySortBy,
	})
	if err != nil {
		return fmt.Errorf("run workflow: search restaurants: %w", err)
	}
	if len(results) == 0 {
		return &DiscoveryEmptyError{Kind: "restaurants"}
	}

	state.Restaurants = make([]*domain.Restaurant, 0, len(results))
	for _, r := range results {
		state.Restaurants = append(state.Restaurants, &domain.Restaurant{
			Place: domain.Place{
				Name:       r.Name,
				Address:    r.Address,
				Coordinate: r.Point,
				ExternalID: r.ID,
			},
			DistanceFromOrigin: r.DistanceMeters,
			Phone:              r.Phone,
			URL:                r.URL,
		})
	}

	sort.SliceStable(state.Restaurants, func(i, j int) bool {
		return state.Restaurants[i].DistanceFromOrigin < state.Restaurants[j].DistanceFromOrigin
	})
	return nil
}

func userMatrix(ctx context.Context, req TripRequest, deps WorkflowDeps, state *domain.ItineraryState) ([]domain.DirectionRow, error) {
	row, err := deps.Matrix.BuildFromPoint(ctx, "user", req.Point, state.Places)
	if err != nil {
		return nil, err
	}
	return []domain.DirectionRow{row}, nil
}
