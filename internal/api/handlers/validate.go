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
	"trip-itinerary-service/internal/services"
)

type ValidateHandler struct {
	Resolver *services.SegmentResolver
	Pacer    services.Pacer
}

// ValidateStop checks whether a proposed stop insertion keeps the
// itinerary within its travel-time budget.
func (h *ValidateHandler) ValidateStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ValidateStopRequest

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

	if strings.TrimSpace(req.NewStop) == "" {
		writeError(w, r, http.StatusBadRequest, "new_stop is required")
		return
	}
	for _, s := range append(append([]string{}, req.Stops...), req.NewStop) {
		if _, err := domain.ParseCoordinate(s); err != nil {
			writeError(w, r, http.StatusBadRequest, "stops and new_stop must be \"lng,lat\" strings")
			return
		}
	}

	result, err := services.ValidateInsertion(r.Context(), services.ValidateInsertionRequest{
		Stops:                 req.Stops,
		NewStop:               req.NewStop,
		InsertAfterIndex:      req.InsertAfterIndex,
		MaxDurationHours:      req.MaxDurationHours,
		PriorSegmentDurations: req.PriorSegmentDurations,
		PriorSegmentDistances: req.PriorSegmentDistances,
	}, h.Resolver, h.Pacer)
	if err != nil {
		var pre *services.PreconditionError
		if errors.As(err, &pre) {
			writeError(w, r, http.StatusBadRequest, pre.Error())
			return
		}

		log.Printf("validate stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, validateResponse(result))
}

func validateResponse(v domain.ValidationResult) dto.ValidateStopResponse {
	res := dto.ValidateStopResponse{
		Valid:                v.Valid,
		TotalDurationMinutes: v.TotalDurationMinutes,
		TotalDistanceMeters:  v.TotalDistanceMeters,
		TotalDistanceKm:      v.TotalDistanceKm,
		MaxDurationMinutes:   v.MaxDurationMinutes,
		ExceededByMinutes:    v.ExceededByMinutes,
		SegmentDurations:     v.SegmentDurations,
		SegmentDistances:     v.SegmentDistances,
		Message:              v.Message,
	}

	if v.NewSegment != nil {
		res.NewSegment = &dto.SegmentResponse{
			DurationMinutes: v.NewSegment.DurationMinutes,
			DistanceMeters:  v.NewSegment.DistanceMeters,
		}
	}

	res.SegmentDetails = make([]dto.SegmentResponse, 0, len(v.SegmentDetails))
	for _, seg := range v.SegmentDetails {
		res.SegmentDetails = append(res.SegmentDetails, dto.SegmentResponse{
			DurationMinutes: seg.DurationMinutes,
			DistanceMeters:  seg.DistanceMeters,
		})
	}

	return res
}
