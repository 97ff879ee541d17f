package services

import (
	"context"
	"fmt"
	"math"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// Stop lists are start + up to 5 waypoints + goal.
const (
	minStops = 2
	maxStops = 7
)

// Substituted when a downstream segment lookup is unavailable. Downstream
// legs are informational context, not the subject of validation, so an
// approximate total beats aborting the whole check.
const (
	fallbackDurationMinutes = 30
	fallbackDistanceMeters  = 10000.0
)

const defaultMaxDurationHours = 12

type ValidateInsertionRequest struct {
	// Ordered "lng,lat" stops of the current itinerary.
	Stops []string
	// Candidate stop in "lng,lat" form.
	NewStop string
	// The new stop goes between Stops[InsertAfterIndex] and the next stop.
	InsertAfterIndex int
	// Duration budget; 0 means the default of 12 hours. Fractional
	// values are allowed.
	MaxDurationHours float64
	// Pre-known downstream leg metrics from a previous validation.
	// Reused verbatim when both slices are present and the same length;
	// staleness is the caller's responsibility.
	PriorSegmentDurations []int
	PriorSegmentDistances []float64
}

// ValidateInsertion checks whether inserting a new stop keeps total travel
// time within the duration budget.
//
// The new A->new->B leg is the object under test: if it cannot be
// resolved, the result is a fully-formed invalid ValidationResult with
// zero totals, not an error. Downstream legs get the fallback estimate on
// unavailability instead. The only error returns are precondition
// violations and cancellation.
//
// The function is pure given identical provider responses; it keeps no
// state between calls.
func ValidateInsertion(
	ctx context.Context,
	req ValidateInsertionRequest,
	resolver *SegmentResolver,
	pacer Pacer,
) (_ domain.ValidationResult, err error) {
	defer obs.Time(ctx, "validate.Insertion")(&err)

	if len(req.Stops) < minStops {
		return domain.ValidationResult{}, &PreconditionError{
			Msg: fmt.Sprintf("stop list must hold at least %d stops, got %d", minStops, len(req.Stops)),
		}
	}
	if len(req.Stops) > maxStops {
		return domain.ValidationResult{}, &PreconditionError{
			Msg: fmt.Sprintf("stop list must hold at most %d stops, got %d", maxStops, len(req.Stops)),
		}
	}
	if req.InsertAfterIndex < 0 || req.InsertAfterIndex > len(req.Stops)-2 {
		return domain.ValidationResult{}, &PreconditionError{
			Msg: fmt.Sprintf("insert_after_index %d out of range [0, %d]", req.InsertAfterIndex, len(req.Stops)-2),
		}
	}

	maxHours := req.MaxDurationHours
	if maxHours <= 0 {
		maxHours = defaultMaxDurationHours
	}
	budgetMinutes := int(math.Round(maxHours * 60))

	if err := pacer.Wait(ctx); err != nil {
		return domain.ValidationResult{}, fmt.Errorf("validate insertion: pacing wait: %w", err)
	}

	before := req.Stops[req.InsertAfterIndex]
	after := req.Stops[req.InsertAfterIndex+1]

	newSeg, err := resolver.ResolveVia(ctx, before, req.NewStop, after)
	if err != nil {
		// The new leg is load-bearing; no estimate may stand in for it.
		return domain.ValidationResult{
			Valid:              false,
			MaxDurationMinutes: budgetMinutes,
			SegmentDurations:   []int{},
			SegmentDistances:   []float64{},
			SegmentDetails:     []domain.RouteSegment{},
			Message:            fmt.Sprintf("the route through the new stop %s could not be computed; the stop cannot be added right now", req.NewStop),
		}, nil
	}

	durations, distances, details, err := downstreamSegments(ctx, req, resolver, pacer)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	totalMinutes := newSeg.DurationMinutes
	totalMeters := newSeg.DistanceMeters
	for i := range durations {
		totalMinutes += durations[i]
		totalMeters += distances[i]
	}

	totalKm := math.Round(totalMeters/1000*100) / 100

	result := domain.ValidationResult{
		TotalDurationMinutes: totalMinutes,
		TotalDistanceMeters:  totalMeters,
		TotalDistanceKm:      totalKm,
		MaxDurationMinutes:   budgetMinutes,
		NewSegment:           &newSeg,
		SegmentDurations:     durations,
		SegmentDistances:     distances,
		SegmentDetails:       details,
	}

	// Exactly hitting the budget is still valid; rejection needs a
	// strictly greater total.
	if totalMinutes > budgetMinutes {
		exceeded := totalMinutes - budgetMinutes
		result.Valid = false
		result.ExceededByMinutes = &exceeded
		result.Message = fmt.Sprintf(
			"total travel time %d min exceeds the %d min budget by %d min (%.1f h, %.2f km)",
			totalMinutes, budgetMinutes, exceeded, float64(totalMinutes)/60, totalKm,
		)
		return result, nil
	}

	result.Valid = true
	result.Message = fmt.Sprintf(
		"total travel time %.1f h over %.2f km fits within the %d min budget",
		float64(totalMinutes)/60, totalKm, budgetMinutes,
	)
	return result, nil
}

// downstreamSegments yields metrics for every consecutive pair from the
// stop after the insertion point to the end of the list. Caller-supplied
// prior data is trusted as given; otherwise each pair is recomputed with
// pacing between calls, substituting the fallback estimate when a pair is
// unavailable.
func downstreamSegments(
	ctx context.Context,
	req ValidateInsertionRequest,
	resolver *SegmentResolver,
	pacer Pacer,
) ([]int, []float64, []domain.RouteSegment, error) {
	pairCount := len(req.Stops) - req.InsertAfterIndex - 2

	if len(req.PriorSegmentDurations) > 0 &&
		len(req.PriorSegmentDurations) == len(req.PriorSegmentDistances) {
		durations := append([]int{}, req.PriorSegmentDurations...)
		distances := append([]float64{}, req.PriorSegmentDistances...)
		details := make([]domain.RouteSegment, 0, len(durations))
		for i := range durations {
			details = append(details, domain.RouteSegment{
				DurationMinutes: durations[i],
				DistanceMeters:  distances[i],
			})
		}
		return durations, distances, details, nil
	}

	durations := make([]int, 0, pairCount)
	distances := make([]float64, 0, pairCount)
	details := make([]domain.RouteSegment, 0, pairCount)

	for i := req.InsertAfterIndex + 1; i < len(req.Stops)-1; i++ {
		if err := pacer.Wait(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("validate insertion: pacing wait: %w", err)
		}

		seg, err := resolver.Resolve(ctx, req.Stops[i], req.Stops[i+1])
		if err != nil {
			seg = domain.RouteSegment{
				DurationMinutes: fallbackDurationMinutes,
				DistanceMeters:  fallbackDistanceMeters,
			}
		}

		durations = append(durations, seg.DurationMinutes)
		distances = append(distances, seg.DistanceMeters)
		details = append(details, seg)
	}

	return durations, distances, details, nil
}
