package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// KakaoPlaceSearcher implements PlaceSearcher against the Kakao Local
// category-search API. The wire format reports x/y/distance as strings.
type KakaoPlaceSearcher struct {
	session *http.Client
	apiKey  string
	baseURL string
}

type categoryResponse struct {
	Documents []struct {
		ID              string `json:"id"`
		PlaceName       string `json:"place_name"`
		AddressName     string `json:"address_name"`
		RoadAddressName string `json:"road_address_name"`
		Phone           string `json:"phone"`
		PlaceURL        string `json:"place_url"`
		X               string `json:"x"`
		Y               string `json:"y"`
		Distance        string `json:"distance"`
	} `json:"documents"`
}

func NewKakaoPlaceSearcher(apiKey string) (*KakaoPlaceSearcher, error) {
	if apiKey == "" {
		return nil, errors.New("kakao place searcher: api key is required")
	}

	return &KakaoPlaceSearcher{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://dapi.kakao.com",
	}, nil
}

// WithBaseURL points the searcher at a different endpoint. For tests.
func (k *KakaoPlaceSearcher) WithBaseURL(baseURL string) *KakaoPlaceSearcher {
	k.baseURL = baseURL
	return k
}

func (k *KakaoPlaceSearcher) SearchNearby(
	ctx context.Context,
	params ports.SearchNearbyParams,
) (_ []ports.PlaceResult, err error) {
	defer obs.Time(ctx, "kakao.SearchNearby")(&err)

	endpoint := k.baseURL + "/v2/local/search/category.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search nearby: create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+k.apiKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("category_group_code", params.CategoryCode)
	q.Set("x", strconv.FormatFloat(params.Point.Lng, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(params.Point.Lat, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(params.RadiusMeters))
	q.Set("size", strconv.Itoa(params.Limit))
	q.Set("sort", params.SortBy)
	req.URL.RawQuery = q.Encode()

	resp, err := k.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search nearby: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search nearby: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded categoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search nearby: decode response: %w", err)
	}

	out := make([]ports.PlaceResult, 0, len(decoded.Documents))
	for _, d := range decoded.Documents {
		lng, err := strconv.ParseFloat(d.X, 64)
		if err != nil {
			return nil, fmt.Errorf("search nearby: place %q: parse x: %w", d.PlaceName, err)
		}
		lat, err := strconv.ParseFloat(d.Y, 64)
		if err != nil {
			return nil, fmt.Errorf("search nearby: place %q: parse y: %w", d.PlaceName, err)
		}

		// Distance is omitted by the provider when no search point was
		// given; treat an empty field as zero.
		var dist float64
		if d.Distance != "" {
			dist, err = strconv.ParseFloat(d.Distance, 64)
			if err != nil {
				return nil, fmt.Errorf("search nearby: place %q: parse distance: %w", d.PlaceName, err)
			}
		}

		address := d.RoadAddressName
		if address == "" {
			address = d.AddressName
		}

		out = append(out, ports.PlaceResult{
			ID:             d.ID,
			Name:           d.PlaceName,
			Address:        address,
			Phone:          d.Phone,
			URL:            d.PlaceURL,
			Point:          domain.Coordinate{Lng: lng, Lat: lat},
			DistanceMeters: dist,
		})
	}

	return out, nil
}
