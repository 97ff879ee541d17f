package ports

import "context"

// Routing option requesting the fastest road route. The provider may
// support additional options (shortest, toll-free); the engine only ever
// asks for the fastest one.
const RouteOptionFastest = "trafast"

// Aggregate metrics of one route alternative. Duration is reported by the
// provider in milliseconds.
type RouteSummary struct {
	DurationMillis int64
	DistanceMeters float64
	TollFare       int
	TaxiFare       int
}

// One route alternative under a routing option.
type RouteAlternative struct {
	Summary RouteSummary
	Path    [][]float64
}

// Provider response: route alternatives keyed by option name. A successful
// call may still carry zero alternatives for the requested option.
type RouteResponse struct {
	Alternatives map[string][]RouteAlternative
}

// Contract for the external driving-route provider.
//
// origin, goal and waypoint are "lng,lat" strings; waypoint may be empty
// for a two-point route. Implementations return a typed error for
// provider-level failures (non-zero result code) and transport failures,
// and never retry on their own.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, goal, waypoint, option string) (RouteResponse, error)
}
