package dto

type ItineraryRequest struct {
	Destination string  `json:"destination"`
	Lng         float64 `json:"lng"`
	Lat         float64 `json:"lat"`
	Days        int     `json:"days"`
	Notes       string  `json:"notes"`
}

type RouteEntry struct {
	To              string  `json:"to"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceMeters  float64 `json:"distance_meters"`
}

type MatrixRow struct {
	From   string       `json:"from"`
	Routes []RouteEntry `json:"routes"`
}

type RestaurantResponse struct {
	Name               string  `json:"name"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone,omitempty"`
	URL                string  `json:"url,omitempty"`
	DistanceFromOrigin float64 `json:"distance_from_origin_meters"`
}

type PlaceResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ItineraryResponse struct {
	ID                      string               `json:"id"`
	Destination             string               `json:"destination"`
	Places                  []PlaceResponse      `json:"places"`
	Restaurants             []RestaurantResponse `json:"restaurants"`
	UserToPlaceMatrix       []MatrixRow          `json:"user_to_place_matrix"`
	PlaceToPlaceMatrix      []MatrixRow          `json:"place_to_place_matrix"`
	RestaurantToPlaceMatrix []MatrixRow          `json:"restaurant_to_place_matrix"`
	Draft                   string               `json:"draft"`
}
