package domain

// A point of interest returned by the place-search collaborator.
// Read-only within the engine.
type Place struct {
	Name       string
	Address    string
	Coordinate Coordinate
	ExternalID string
}

// A restaurant candidate. DistanceFromOrigin is the straight-line distance
// in meters reported by the search collaborator, not a road distance.
type Restaurant struct {
	Place
	DistanceFromOrigin float64
	Phone              string
	URL                string
}
