package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/adapters/directions"
	"trip-itinerary-service/internal/ports"
)

// fakeProvider returns a fixed response or error for any request.
type fakeProvider struct {
	resp ports.RouteResponse
	err  error
}

func (f *fakeProvider) GetRoute(ctx context.Context, origin, goal, waypoint, option string) (ports.RouteResponse, error) {
	return f.resp, f.err
}

func TestResolveRoundsToNearestMinute(t *testing.T) {
	cases := []struct {
		millis int64
		want   int
	}{
		{millis: 1_500_000, want: 25}, // exactly 25 min
		{millis: 1_529_999, want: 25}, // 25.49 min rounds down
		{millis: 1_530_000, want: 26}, // 25.5 min rounds up
		{millis: 0, want: 0},
	}

	for _, tc := range cases {
		provider := directions.NewMockRouteProvider([]directions.MockLeg{
			{Origin: "126.98,37.57", Goal: "127.03,37.50", DurationMillis: tc.millis, Meters: 8000},
		})
		resolver := NewSegmentResolver(provider)

		seg, err := resolver.Resolve(context.Background(), "126.98,37.57", "127.03,37.50")
		require.NoError(t, err)
		assert.Equal(t, tc.want, seg.DurationMinutes)
		assert.Equal(t, 8000.0, seg.DistanceMeters)
	}
}

func TestResolveTakesFirstAlternative(t *testing.T) {
	provider := &fakeProvider{resp: ports.RouteResponse{
		Alternatives: map[string][]ports.RouteAlternative{
			ports.RouteOptionFastest: {
				{Summary: ports.RouteSummary{DurationMillis: 600_000, DistanceMeters: 2000}},
				{Summary: ports.RouteSummary{DurationMillis: 900_000, DistanceMeters: 3000}},
			},
		},
	}}
	resolver := NewSegmentResolver(provider)

	seg, err := resolver.Resolve(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 10, seg.DurationMinutes)
	assert.Equal(t, 2000.0, seg.DistanceMeters)
}

func TestResolveEmptyRouteListIsUnavailable(t *testing.T) {
	provider := &fakeProvider{resp: ports.RouteResponse{
		Alternatives: map[string][]ports.RouteAlternative{},
	}}
	resolver := NewSegmentResolver(provider)

	_, err := resolver.Resolve(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestResolveProviderFailureIsUnavailable(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	resolver := NewSegmentResolver(provider)

	_, err := resolver.Resolve(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestResolveViaPassesWaypoint(t *testing.T) {
	provider := directions.NewMockRouteProvider([]directions.MockLeg{
		{Origin: "a", Waypoint: "w", Goal: "b", DurationMillis: 1_200_000, Meters: 4000},
	})
	resolver := NewSegmentResolver(provider)

	// The mock keys on the waypoint, so resolving succeeds only when it
	// went through as part of a single three-point call.
	seg, err := resolver.ResolveVia(context.Background(), "a", "w", "b")
	require.NoError(t, err)
	assert.Equal(t, 20, seg.DurationMinutes)

	_, err = resolver.Resolve(context.Background(), "a", "b")
	require.Error(t, err)
}
