package services

import (
	"context"
	"fmt"
	"math"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// SegmentResolver normalizes provider responses into RouteSegments.
//
// The provider may expose several route alternatives per routing option;
// the resolver always takes the first alternative under the fastest
// option. Duration is rounded from milliseconds to the nearest whole
// minute here and nowhere else, so matrix values and validation totals
// cannot drift apart.
type SegmentResolver struct {
	provider ports.RouteProvider
}

func NewSegmentResolver(provider ports.RouteProvider) *SegmentResolver {
	return &SegmentResolver{provider: provider}
}

// Resolve computes the direct origin->goal segment.
func (r *SegmentResolver) Resolve(ctx context.Context, origin, goal string) (domain.RouteSegment, error) {
	return r.resolve(ctx, origin, goal, "")
}

// ResolveVia computes the origin->waypoint->goal segment as a single
// waypointed routing call. Summing two independent legs instead would
// miss the real road path through the waypoint (a U-turn or detour cost).
func (r *SegmentResolver) ResolveVia(ctx context.Context, origin, waypoint, goal string) (domain.RouteSegment, error) {
	return r.resolve(ctx, origin, goal, waypoint)
}

func (r *SegmentResolver) resolve(ctx context.Context, origin, goal, waypoint string) (domain.RouteSegment, error) {
	resp, err := r.provider.GetRoute(ctx, origin, goal, waypoint, ports.RouteOptionFastest)
	if err != nil {
		return domain.RouteSegment{}, fmt.Errorf("resolve segment %s -> %s: %w: %w", origin, goal, ErrRouteUnavailable, err)
	}

	alts := resp.Alternatives[ports.RouteOptionFastest]
	if len(alts) == 0 {
		return domain.RouteSegment{}, fmt.Errorf("resolve segment %s -> %s: empty route list: %w", origin, goal, ErrRouteUnavailable)
	}

	summary := alts[0].Summary
	if summary.DurationMillis < 0 || summary.DistanceMeters < 0 {
		return domain.RouteSegment{}, fmt.Errorf("resolve segment %s -> %s: negative summary metrics: %w", origin, goal, ErrRouteUnavailable)
	}

	return domain.RouteSegment{
		DurationMinutes: int(math.Round(float64(summary.DurationMillis) / 60000.0)),
		DistanceMeters:  summary.DistanceMeters,
	}, nil
}
