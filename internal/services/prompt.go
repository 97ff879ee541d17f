package services

import (
	"fmt"
	"strings"

	"trip-itinerary-service/internal/domain"
)

// BuildPrompt serializes the trip metadata and the three travel-time
// matrices into the single prompt sent to the text-generation
// collaborator. The collaborator's output is stored as-is; only the input
// side is structured.
func BuildPrompt(req TripRequest, state *domain.ItineraryState) string {
	var b strings.Builder

	days := req.Days
	if days < 1 {
		days = 1
	}

	fmt.Fprintf(&b, "Draft a %d-day travel itinerary for %s.\n", days, req.Destination)
	if req.Notes != "" {
		fmt.Fprintf(&b, "Traveler notes: %s\n", req.Notes)
	}

	b.WriteString("\nAttractions:\n")
	for _, p := range state.Places {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Name, p.Address)
	}

	b.WriteString("\nRestaurants (nearest first):\n")
	for _, r := range state.Restaurants {
		fmt.Fprintf(&b, "- %s (%s, %.0f m away)\n", r.Name, r.Address, r.DistanceFromOrigin)
	}

	writeMatrix(&b, "Travel times from the traveler's start point", state.UserToPlaceMatrix)
	writeMatrix(&b, "Travel times between attractions", state.PlaceToPlaceMatrix)
	writeMatrix(&b, "Travel times from restaurants to attractions", state.RestaurantToPlaceMatrix)

	b.WriteString("\nPlan each day so driving time stays reasonable. Use the travel times above; do not invent new ones.\n")
	return b.String()
}

func writeMatrix(b *strings.Builder, title string, rows []domain.DirectionRow) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, row := range rows {
		for _, rt := range row.Routes {
			fmt.Fprintf(b, "- %s -> %s: %d min, %.1f km\n",
				row.From, rt.To, rt.Segment.DurationMinutes, rt.Segment.DistanceMeters/1000)
		}
	}
}
