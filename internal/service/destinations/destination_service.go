package destinations

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

const (
	maxResults         = 20
	minGeocodeQueryLen = 2
	geocodeBelow       = 5
)

type DestinationUseCase interface {
	Search(ctx context.Context, query, season string) []domain.DestinationSuggestion
}

type Cache interface {
	Get(key string) ([]domain.DestinationSuggestion, bool)
	Set(key string, results []domain.DestinationSuggestion)
}

type DestinationService struct {
	geocoder Geocoder
	cache    Cache
}

// NewDestinationService accepts a nil geocoder or cache.
func NewDestinationService(geocoder Geocoder, cache Cache) *DestinationService {
	return &DestinationService{geocoder: geocoder, cache: cache}
}

// Search matches the curated table first and tops the result up from the
// geocoder when a real query found few curated destinations. A geocoder
// failure only costs the extra results.
func (s *DestinationService) Search(ctx context.Context, query, season string) []domain.DestinationSuggestion {
	query = strings.TrimSpace(query)
	season = strings.ToLower(strings.TrimSpace(season))

	key := season + "|" + strings.ToLower(query)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached
		}
	}

	results := searchCurated(query, season)
	cacheable := true

	if s.geocoder != nil && utf8.RuneCountInString(query) >= minGeocodeQueryLen && len(results) < geocodeBelow {
		found, err := s.geocoder.Search(ctx, query)
		if err != nil {
			log.Printf("destinations: geocoder search for %q failed, using curated results only: %v", query, err)
			cacheable = false
		}
		for _, r := range found {
			if containsName(results, r.Name) {
				continue
			}
			lat := r.Latitude
			r.SuggestedSeason = ClassifySeasonByLocation(r.Name, &lat)
			results = append(results, r)
		}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	if s.cache != nil && cacheable {
		s.cache.Set(key, results)
	}
	return results
}

func searchCurated(query, season string) []domain.DestinationSuggestion {
	seasons := domain.Seasons
	if season != "" {
		seasons = []domain.Season{domain.Season(season)}
	}

	q := strings.ToLower(query)
	results := make([]domain.DestinationSuggestion, 0)
	for _, s := range seasons {
		for _, d := range curated[s] {
			if q != "" && !matches(d, q) {
				continue
			}
			results = append(results, domain.DestinationSuggestion{
				Name:            d.Name,
				Country:         d.Country,
				FullName:        d.Name + ", " + d.Country,
				Latitude:        d.Latitude,
				SuggestedSeason: s,
				Description:     d.Description,
			})
		}
	}
	return results
}

func matches(d curatedDestination, q string) bool {
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Country), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}

func containsName(results []domain.DestinationSuggestion, name string) bool {
	for _, r := range results {
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

var _ DestinationUseCase = (*DestinationService)(nil)
