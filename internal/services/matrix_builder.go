package services

import (
	"context"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// MatrixBuilder computes complete cross products of pairwise segments.
//
// Calls go out strictly one at a time through the pacer; a matrix pass
// never fans out concurrently because the provider is rate limited.
// Unavailable segments are omitted from the affected row, never retried
// and never given a placeholder. A->B and B->A are computed
// independently: the road network is directional.
type MatrixBuilder struct {
	resolver *SegmentResolver
	pacer    Pacer
}

func NewMatrixBuilder(resolver *SegmentResolver, pacer Pacer) *MatrixBuilder {
	return &MatrixBuilder{resolver: resolver, pacer: pacer}
}

// Build computes one row per origin against all destinations.
//
// Self pairs are skipped by entity identity when excludeSelf is set: two
// distinct places sharing coordinates still get a segment. Rows come out
// in origin-iteration order and each row's routes in destination-iteration
// order; the ordering is stable but carries no semantic weight.
func (b *MatrixBuilder) Build(
	ctx context.Context,
	origins []*domain.Place,
	destinations []*domain.Place,
	excludeSelf bool,
) (_ []domain.DirectionRow, err error) {
	defer obs.Time(ctx, "matrix.Build")(&err)

	rows := make([]domain.DirectionRow, 0, len(origins))
	for _, origin := range origins {
		row := domain.DirectionRow{From: origin.Name, Routes: []domain.DirectionRoute{}}

		for _, dest := range destinations {
			if excludeSelf && origin == dest {
				continue
			}

			seg, ok, err := b.segment(ctx, origin.Coordinate.String(), dest.Coordinate.String())
			if err != nil {
				return nil, fmt.Errorf("build matrix: %w", err)
			}
			if !ok {
				continue
			}

			row.Routes = append(row.Routes, domain.DirectionRoute{To: dest.Name, Segment: seg})
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// BuildFromPoint computes the single row from a bare coordinate (the
// user's location has no Place entity) to all destinations.
func (b *MatrixBuilder) BuildFromPoint(
	ctx context.Context,
	label string,
	origin domain.Coordinate,
	destinations []*domain.Place,
) (_ domain.DirectionRow, err error) {
	defer obs.Time(ctx, "matrix.BuildFromPoint")(&err)

	row := domain.DirectionRow{From: label, Routes: []domain.DirectionRoute{}}
	for _, dest := range destinations {
		seg, ok, err := b.segment(ctx, origin.String(), dest.Coordinate.String())
		if err != nil {
			return domain.DirectionRow{}, fmt.Errorf("build matrix from point: %w", err)
		}
		if !ok {
			continue
		}

		row.Routes = append(row.Routes, domain.DirectionRoute{To: dest.Name, Segment: seg})
	}

	return row, nil
}

// segment resolves one pair. Unavailability (in any form, transport
// failures included) is reported as ok=false; the returned error is
// reserved for cancellation from the pacer.
func (b *MatrixBuilder) segment(ctx context.Context, origin, dest string) (domain.RouteSegment, bool, error) {
	if err := b.pacer.Wait(ctx); err != nil {
		return domain.RouteSegment{}, false, fmt.Errorf("pacing wait: %w", err)
	}

	seg, err := b.resolver.Resolve(ctx, origin, dest)
	if err != nil {
		return domain.RouteSegment{}, false, nil
	}

	return seg, true, nil
}
