package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-itinerary-service/internal/ports"
)

// SQL-backed implementation of the ItineraryRepository port.
type SQLItineraryRepository struct{ DB *sql.DB }

func NewSQLItineraryRepository(db *sql.DB) *SQLItineraryRepository {
	return &SQLItineraryRepository{DB: db}
}

func (s *SQLItineraryRepository) SaveItinerary(ctx context.Context, rec ports.ItineraryRecord) error {
	if s.DB == nil {
		return errors.New("itinerary repository: DB is nil")
	}
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("save itinerary: id must be non-empty")
	}

	query := `
	INSERT INTO itineraries (id, destination, draft_text, created_at)
	VALUES ($1, $2, $3, $4);
	`
	if _, err := s.DB.ExecContext(ctx, query, rec.ID, rec.Destination, rec.DraftText, rec.CreatedAt); err != nil {
		return fmt.Errorf("save itinerary id=%s: %w", rec.ID, err)
	}

	return nil
}

func (s *SQLItineraryRepository) GetItinerary(ctx context.Context, id string) (ports.ItineraryRecord, error) {
	if s.DB == nil {
		return ports.ItineraryRecord{}, errors.New("itinerary repository: DB is nil")
	}

	query := `
	SELECT id, destination, draft_text, created_at
	FROM itineraries
	WHERE id = $1;
	`
	var rec ports.ItineraryRecord
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Destination, &rec.DraftText, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ItineraryRecord{}, fmt.Errorf("get itinerary id=%s: not found", id)
	}
	if err != nil {
		return ports.ItineraryRecord{}, fmt.Errorf("get itinerary id=%s: %w", id, err)
	}

	return rec, nil
}

func (s *SQLItineraryRepository) ListItineraries(ctx context.Context) ([]ports.ItineraryRecord, error) {
	if s.DB == nil {
		return nil, errors.New("itinerary repository: DB is nil")
	}

	query := `
	SELECT id, destination, draft_text, created_at
	FROM itineraries
	ORDER BY created_at DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: query itineraries table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.ItineraryRecord, 0, 16)
	for rows.Next() {
		var rec ports.ItineraryRecord
		if err := rows.Scan(&rec.ID, &rec.Destination, &rec.DraftText, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list itineraries: scan row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list itineraries: row iteration: %w", err)
	}

	return out, nil
}
