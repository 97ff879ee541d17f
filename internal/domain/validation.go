package domain

// Outcome of validating one proposed stop insertion.
//
// ExceededByMinutes is set only when Valid is false because the duration
// budget was exceeded. NewSegment is set whenever the new three-point leg
// could be resolved. SegmentDurations/SegmentDistances/SegmentDetails
// describe the downstream legs after the insertion point and may contain
// fallback estimates for legs the provider could not resolve.
type ValidationResult struct {
	Valid                bool
	TotalDurationMinutes int
	TotalDistanceMeters  float64
	TotalDistanceKm      float64
	MaxDurationMinutes   int
	ExceededByMinutes    *int
	NewSegment           *RouteSegment
	SegmentDurations     []int
	SegmentDistances     []float64
	SegmentDetails       []RouteSegment
	Message              string
}
