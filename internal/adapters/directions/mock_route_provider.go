package directions

import (
	"context"
	"fmt"

	"trip-itinerary-service/internal/ports"
)

type MockLeg struct {
	Origin, Goal, Waypoint string
	DurationMillis         int64
	Meters                 float64
}

// MockRouteProvider serves canned legs keyed by origin|waypoint|goal and
// counts calls so tests can assert sequencing.
type MockRouteProvider struct {
	m     map[string]ports.RouteSummary
	Calls int
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]ports.RouteSummary, len(legs))
	for _, l := range legs {
		m[legKey(l.Origin, l.Waypoint, l.Goal)] = ports.RouteSummary{
			DurationMillis: l.DurationMillis,
			DistanceMeters: l.Meters,
		}
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(
	ctx context.Context,
	origin, goal, waypoint, option string,
) (ports.RouteResponse, error) {
	p.Calls++

	summary, ok := p.m[legKey(origin, waypoint, goal)]
	if !ok {
		return ports.RouteResponse{}, fmt.Errorf("missing leg %q -> %q (via %q)", origin, goal, waypoint)
	}

	return ports.RouteResponse{
		Alternatives: map[string][]ports.RouteAlternative{
			option: {{Summary: summary}},
		},
	}, nil
}

func legKey(origin, waypoint, goal string) string {
	return origin + "|" + waypoint + "|" + goal
}
