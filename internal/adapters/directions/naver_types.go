package directions

// Wire shape of the driving-directions response. Route alternatives are
// keyed by option name ("trafast", "tracomfort", ...); duration is in
// milliseconds, distance in meters.
type routeResponse struct {
	Code    int                       `json:"code"`
	Message string                    `json:"message"`
	Route   map[string][]routeVariant `json:"route"`
}

type routeVariant struct {
	Summary routeSummary `json:"summary"`
	Path    [][]float64  `json:"path"`
}

type routeSummary struct {
	Duration int64   `json:"duration"`
	Distance float64 `json:"distance"`
	TollFare int     `json:"tollFare"`
	TaxiFare int     `json:"taxiFare"`
}
