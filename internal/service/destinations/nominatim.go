package destinations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type Geocoder interface {
	Search(ctx context.Context, query string) ([]domain.DestinationSuggestion, error)
}

// NominatimClient queries an OpenStreetMap Nominatim search endpoint.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns cities matching query. The suggested season is left empty
// for the caller to classify.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]domain.DestinationSuggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "10")
	params.Set("featuretype", "city")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: nominatim returned %s", domain.ErrUpstreamUnavailable, resp.Status)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err)
	}

	results := make([]domain.DestinationSuggestion, 0, len(places))
	for _, p := range places {
		results = append(results, toSuggestion(p, query))
	}
	return results, nil
}

func toSuggestion(p nominatimPlace, query string) domain.DestinationSuggestion {
	parts := strings.Split(p.DisplayName, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		name = query
	}
	country := strings.TrimSpace(parts[len(parts)-1])

	fullName := p.DisplayName
	if fullName == "" {
		fullName = name + ", " + country
	}
	lat, _ := strconv.ParseFloat(p.Lat, 64)
	lon, _ := strconv.ParseFloat(p.Lon, 64)

	return domain.DestinationSuggestion{
		Name:        name,
		Country:     country,
		FullName:    fullName,
		Latitude:    lat,
		Longitude:   lon,
		Description: "Explore " + name,
	}
}
