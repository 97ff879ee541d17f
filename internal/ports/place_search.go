package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Category group codes understood by the place-search collaborator.
const (
	CategoryAttraction = "AT4"
	CategoryRestaurant = "FD6"
)

type SearchNearbyParams struct {
	Point        domain.Coordinate
	CategoryCode string
	RadiusMeters int
	Limit        int
	SortBy       string
}

// One place as reported by the search collaborator. DistanceMeters is
// the straight-line distance from the search point.
type PlaceResult struct {
	ID             string
	Name           string
	Address        string
	Phone          string
	URL            string
	Point          domain.Coordinate
	DistanceMeters float64
}

// Contract for nearby place discovery.
type PlaceSearcher interface {
	SearchNearby(ctx context.Context, params SearchNearbyParams) ([]PlaceResult, error)
}
