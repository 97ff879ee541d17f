package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// ProviderError is a provider-level failure: the HTTP exchange succeeded
// but the result code signals the route could not be produced.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("route provider code %d: %s", e.Code, e.Message)
}

// NaverRouteProvider implements RouteProvider against the Naver Maps
// Directions 5 API.
//
// It issues single-origin/single-goal driving requests with at most one
// waypoint and reports failures as typed errors. It holds no state beyond
// credentials and is safe for concurrent use.
type NaverRouteProvider struct {
	session      *http.Client
	clientID     string
	clientSecret string
	baseURL      string
}

func NewNaverRouteProvider(clientID, clientSecret string) (*NaverRouteProvider, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("naver route provider: client id and secret are required")
	}

	return &NaverRouteProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      "https://maps.apigw.ntruss.com",
	}, nil
}

// WithBaseURL points the provider at a different endpoint. For tests.
func (p *NaverRouteProvider) WithBaseURL(baseURL string) *NaverRouteProvider {
	p.baseURL = baseURL
	return p
}

// GetRoute requests a driving route. origin, goal and waypoint are
// "lng,lat" strings; waypoint may be empty.
func (p *NaverRouteProvider) GetRoute(
	ctx context.Context,
	origin, goal, waypoint, option string,
) (_ ports.RouteResponse, err error) {
	defer obs.Time(ctx, "naver.GetRoute")(&err)

	if origin == "" || goal == "" {
		return ports.RouteResponse{}, errors.New("get route: origin and goal must be non-empty")
	}
	if option == "" {
		option = ports.RouteOptionFastest
	}

	endpoint := p.baseURL + "/map-direction/v1/driving"

	req, err := p.newRequest(ctx, endpoint)
	if err != nil {
		return ports.RouteResponse{}, fmt.Errorf("get route: %w", err)
	}

	q := req.URL.Query()
	q.Set("start", origin)
	q.Set("goal", goal)
	q.Set("option", option)
	if waypoint != "" {
		q.Set("waypoints", waypoint)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := p.do(req)
	if err != nil {
		return ports.RouteResponse{}, fmt.Errorf("get route %s -> %s: %w", origin, goal, err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResponse{}, fmt.Errorf("get route: decode response: %w", err)
	}

	if decoded.Code != 0 {
		return ports.RouteResponse{}, &ProviderError{Code: decoded.Code, Message: decoded.Message}
	}

	out := ports.RouteResponse{Alternatives: make(map[string][]ports.RouteAlternative, len(decoded.Route))}
	for opt, variants := range decoded.Route {
		alts := make([]ports.RouteAlternative, 0, len(variants))
		for _, v := range variants {
			alts = append(alts, ports.RouteAlternative{
				Summary: ports.RouteSummary{
					DurationMillis: v.Summary.Duration,
					DistanceMeters: v.Summary.Distance,
					TollFare:       v.Summary.TollFare,
					TaxiFare:       v.Summary.TaxiFare,
				},
				Path: v.Path,
			})
		}
		out.Alternatives[opt] = alts
	}

	return out, nil
}
