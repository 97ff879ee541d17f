package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Places  ports.PlaceSearcher
	Matrix  *services.MatrixBuilder
	TextGen ports.TextGenerator
	Repo    ports.ItineraryRepository
}

// Create runs the full itinerary workflow for one trip request.
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}
	if req.Lng < -180 || req.Lng > 180 || req.Lat < -90 || req.Lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lng/lat out of range")
		return
	}

	days := req.Days
	if days == 0 {
		days = 1
	}
	if days < 1 || days > 14 {
		writeError(w, r, http.StatusBadRequest, "days must be between 1 and 14")
		return
	}

	tripReq := services.TripRequest{
		Destination: destination,
		Point:       domain.Coordinate{Lng: req.Lng, Lat: req.Lat},
		Days:        days,
		Notes:       strings.TrimSpace(req.Notes),
	}

	state, err := services.RunWorkflow(r.Context(), tripReq, services.WorkflowDeps{
		Places:  h.Places,
		Matrix:  h.Matrix,
		TextGen: h.TextGen,
		Repo:    h.Repo,
	})
	if err != nil {
		var empty *services.DiscoveryEmptyError
		if errors.As(err, &empty) {
			writeError(w, r, http.StatusUnprocessableEntity, empty.Error())
			return
		}

		log.Printf("run workflow failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(state))
}

// List returns previously persisted itinerary records.
func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	recs, err := h.Repo.ListItineraries(r.Context())
	if err != nil {
		log.Printf("list itineraries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, recs)
}

func itineraryResponse(state *domain.ItineraryState) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		ID:          state.RecordID,
		Destination: state.Destination,
		Draft:       state.DraftText,
	}

	res.Places = make([]dto.PlaceResponse, 0, len(state.Places))
	for _, p := range state.Places {
		res.Places = append(res.Places, dto.PlaceResponse{Name: p.Name, Address: p.Address})
	}

	res.Restaurants = make([]dto.RestaurantResponse, 0, len(state.Restaurants))
	for _, rest := range state.Restaurants {
		res.Restaurants = append(res.Restaurants, dto.RestaurantResponse{
			Name:               rest.Name,
			Address:            rest.Address,
			Phone:              rest.Phone,
			URL:                rest.URL,
			DistanceFromOrigin: rest.DistanceFromOrigin,
		})
	}

	res.UserToPlaceMatrix = matrixRows(state.UserToPlaceMatrix)
	res.PlaceToPlaceMatrix = matrixRows(state.PlaceToPlaceMatrix)
	res.RestaurantToPlaceMatrix = matrixRows(state.RestaurantToPlaceMatrix)

	return res
}

func matrixRows(rows []domain.DirectionRow) []dto.MatrixRow {
	out := make([]dto.MatrixRow, 0, len(rows))
	for _, row := range rows {
		entries := make([]dto.RouteEntry, 0, len(row.Routes))
		for _, rt := range row.Routes {
			entries = append(entries, dto.RouteEntry{
				To:              rt.To,
				DurationMinutes: rt.Segment.DurationMinutes,
				DistanceMeters:  rt.Segment.DistanceMeters,
			})
		}
		out = append(out, dto.MatrixRow{From: row.From, Routes: entries})
	}
	return out
}
