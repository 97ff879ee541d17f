package dto

type ValidateStopRequest struct {
	Stops                 []string  `json:"stops"`
	NewStop               string    `json:"new_stop"`
	InsertAfterIndex      int       `json:"insert_after_index"`
	MaxDurationHours      float64   `json:"max_duration_hours"`
	PriorSegmentDurations []int     `json:"prior_segment_durations,omitempty"`
	PriorSegmentDistances []float64 `json:"prior_segment_distances,omitempty"`
}

type SegmentResponse struct {
	DurationMinutes int     `json:"duration_minutes"`
	DistanceMeters  float64 `json:"distance_meters"`
}

type ValidateStopResponse struct {
	Valid                bool              `json:"valid"`
	TotalDurationMinutes int               `json:"total_duration_minutes"`
	TotalDistanceMeters  float64           `json:"total_distance_meters"`
	TotalDistanceKm      float64           `json:"total_distance_km"`
	MaxDurationMinutes   int               `json:"max_duration_minutes"`
	ExceededByMinutes    *int              `json:"exceeded_by_minutes,omitempty"`
	NewSegment           *SegmentResponse  `json:"new_segment,omitempty"`
	SegmentDurations     []int             `json:"segment_durations"`
	SegmentDistances     []float64         `json:"segment_distances"`
	SegmentDetails       []SegmentResponse `json:"segment_details"`
	Message              string            `json:"message"`
}
