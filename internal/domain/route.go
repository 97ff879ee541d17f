package domain

// Travel time and road distance for one directed origin->destination leg.
// Durations are whole minutes; distance stays in raw meters until a
// consumer needs kilometers.
type RouteSegment struct {
	DurationMinutes int
	DistanceMeters  float64
}

// One resolved destination entry inside a DirectionRow.
type DirectionRoute struct {
	To      string
	Segment RouteSegment
}

// All resolved routes from a single origin, in destination-iteration order.
// Destinations whose segment could not be resolved are omitted, so a row
// may hold fewer entries than there were candidate destinations.
type DirectionRow struct {
	From   string
	Routes []DirectionRoute
}

// ItineraryState is the accumulator a single workflow run mutates stage by
// stage. It never escapes the run that created it; the persisted record is
// derived from it at the end.
type ItineraryState struct {
	Destination string
	Origin      Coordinate
	Days        int

	Places      []*Place
	Restaurants []*Restaurant

	UserToPlaceMatrix       []DirectionRow
	PlaceToPlaceMatrix      []DirectionRow
	RestaurantToPlaceMatrix []DirectionRow

	// Raw text returned by the generation collaborator, stored verbatim.
	// Parsing the plan's structure is the consuming client's concern.
	DraftText string

	// ID of the persisted itinerary record, set at the end of the run.
	RecordID string
}
