package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinate struct {
	Lng float64
	Lat float64
}

// String renders the canonical "lng,lat" form used by the routing provider.
// Longitude always comes first; a transposed pair silently routes through
// the wrong part of the map, so call sites format through this method or
// ParseCoordinate rather than by hand.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// ParseCoordinate parses the canonical "lng,lat" form.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: want \"lng,lat\"", s)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: longitude: %w", s, err)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: latitude: %w", s, err)
	}

	if lng < -180 || lng > 180 {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: longitude out of range", s)
	}
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("parse coordinate %q: latitude out of range", s)
	}

	return Coordinate{Lng: lng, Lat: lat}, nil
}
