package ports

import (
	"context"
	"time"
)

// The persisted outcome of one workflow run. Matrices are request-scoped
// and intentionally not part of the record.
type ItineraryRecord struct {
	ID          string
	Destination string
	DraftText   string
	CreatedAt   time.Time
}

// Port: a boundary for storing and retrieving itinerary records.
type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, rec ItineraryRecord) error
	GetItinerary(ctx context.Context, id string) (ItineraryRecord, error)
	ListItineraries(ctx context.Context) ([]ItineraryRecord, error)
}
