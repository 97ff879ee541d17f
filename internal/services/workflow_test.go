package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/adapters/directions"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

type fakePlaceSearcher struct {
	byCategory map[string][]ports.PlaceResult
	err        error
}

func (f *fakePlaceSearcher) SearchNearby(ctx context.Context, params ports.SearchNearbyParams) ([]ports.PlaceResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCategory[params.CategoryCode], nil
}

type fakeTextGen struct {
	prompt string
	text   string
}

func (f *fakeTextGen) Complete(ctx context.Context, prompt string, params ports.SamplingParams) (string, error) {
	f.prompt = prompt
	return f.text, nil
}

type fakeRepo struct {
	saved []ports.ItineraryRecord
}

func (f *fakeRepo) SaveItinerary(ctx context.Context, rec ports.ItineraryRecord) error {
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeRepo) GetItinerary(ctx context.Context, id string) (ports.ItineraryRecord, error) {
	return ports.ItineraryRecord{}, nil
}

func (f *fakeRepo) ListItineraries(ctx context.Context) ([]ports.ItineraryRecord, error) {
	return f.saved, nil
}

func workflowFixture() (TripRequest, WorkflowDeps, *fakeTextGen, *fakeRepo) {
	origin := domain.Coordinate{Lng: 126.98, Lat: 37.57}

	attractions := []ports.PlaceResult{
		{ID: "a1", Name: "palace", Address: "1 Palace Rd", Point: domain.Coordinate{Lng: 126.97, Lat: 37.58}},
		{ID: "a2", Name: "tower", Address: "2 Tower St", Point: domain.Coordinate{Lng: 126.99, Lat: 37.55}},
	}
	restaurants := []ports.PlaceResult{
		{ID: "r1", Name: "noodle house", Point: domain.Coordinate{Lng: 127.0, Lat: 37.56}, DistanceMeters: 900},
		{ID: "r2", Name: "grill", Point: domain.Coordinate{Lng: 127.01, Lat: 37.57}, DistanceMeters: 400},
	}

	coords := []domain.Coordinate{origin}
	for _, p := range attractions {
		coords = append(coords, p.Point)
	}
	for _, p := range restaurants {
		coords = append(coords, p.Point)
	}

	legs := make([]directions.MockLeg, 0, len(coords)*len(coords))
	for _, from := range coords {
		for _, to := range coords {
			if from == to {
				continue
			}
			legs = append(legs, directions.MockLeg{
				Origin: from.String(), Goal: to.String(), DurationMillis: 600_000, Meters: 2000,
			})
		}
	}

	provider := directions.NewMockRouteProvider(legs)
	matrix := NewMatrixBuilder(NewSegmentResolver(provider), NopPacer{})
	textGen := &fakeTextGen{text: "Day 1: palace, then tower."}
	repo := &fakeRepo{}

	req := TripRequest{Destination: "Seoul", Point: origin, Days: 2}
	deps := WorkflowDeps{
		Places: &fakePlaceSearcher{byCategory: map[string][]ports.PlaceResult{
			ports.CategoryAttraction: attractions,
			ports.CategoryRestaurant: restaurants,
		}},
		Matrix:  matrix,
		TextGen: textGen,
		Repo:    repo,
	}

	return req, deps, textGen, repo
}

func TestRunWorkflowEndToEnd(t *testing.T) {
	req, deps, textGen, repo := workflowFixture()

	state, err := RunWorkflow(context.Background(), req, deps)
	require.NoError(t, err)

	require.Len(t, state.Places, 2)
	require.Len(t, state.Restaurants, 2)

	// Restaurants come out sorted ascending by reported distance.
	assert.Equal(t, "grill", state.Restaurants[0].Name)
	assert.Equal(t, "noodle house", state.Restaurants[1].Name)

	// One user row covering every attraction.
	require.Len(t, state.UserToPlaceMatrix, 1)
	assert.Len(t, state.UserToPlaceMatrix[0].Routes, 2)

	// Attraction matrix excludes self pairs.
	require.Len(t, state.PlaceToPlaceMatrix, 2)
	for _, row := range state.PlaceToPlaceMatrix {
		for _, rt := range row.Routes {
			assert.NotEqual(t, row.From, rt.To)
		}
	}

	require.Len(t, state.RestaurantToPlaceMatrix, 2)
	for _, row := range state.RestaurantToPlaceMatrix {
		assert.Len(t, row.Routes, 2)
	}

	// The draft is stored verbatim and the record persisted.
	assert.Equal(t, "Day 1: palace, then tower.", state.DraftText)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, state.RecordID, repo.saved[0].ID)
	assert.Equal(t, "Seoul", repo.saved[0].Destination)
	assert.Equal(t, state.DraftText, repo.saved[0].DraftText)

	// The prompt carries the matrices, not just the place names.
	assert.True(t, strings.Contains(textGen.prompt, "palace"))
	assert.True(t, strings.Contains(textGen.prompt, "min"))
}

func TestRunWorkflowFailsFastOnEmptyAttractions(t *testing.T) {
	req, deps, _, repo := workflowFixture()
	deps.Places = &fakePlaceSearcher{byCategory: map[string][]ports.PlaceResult{}}

	_, err := RunWorkflow(context.Background(), req, deps)

	var empty *DiscoveryEmptyError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "attractions", empty.Kind)
	assert.Empty(t, repo.saved)
}

func TestRunWorkflowFailsFastOnEmptyRestaurants(t *testing.T) {
	req, deps, _, repo := workflowFixture()
	searcher := deps.Places.(*fakePlaceSearcher)
	delete(searcher.byCategory, ports.CategoryRestaurant)

	_, err := RunWorkflow(context.Background(), req, deps)

	var empty *DiscoveryEmptyError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "restaurants", empty.Kind)
	assert.Empty(t, repo.saved)
}
