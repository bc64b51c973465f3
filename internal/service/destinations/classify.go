package destinations

import (
	"math"
	"strings"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

var (
	winterKeywords = []string{"ski", "alps", "aspen", "zermatt", "lapland", "iceland"}
	summerKeywords = []string{"beach", "coast", "island", "maldives", "bali", "hawaii"}
	springKeywords = []string{"cherry", "tulip", "blossom", "garden"}
	autumnKeywords = []string{"foliage", "harvest", "vermont", "vineyard"}
)

// ClassifySeasonByMonth maps a northern-hemisphere month to its season.
func ClassifySeasonByMonth(m time.Month) domain.Season {
	switch m {
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	case time.September, time.October, time.November:
		return domain.SeasonAutumn
	case time.December, time.January, time.February:
		return domain.SeasonWinter
	}
	return domain.SeasonSummer
}

// ClassifySeasonByLocation suggests the best season to visit a place from
// keywords in its name, falling back to its latitude. Snow destinations in
// the southern hemisphere are suggested for the northern summer.
func ClassifySeasonByLocation(name string, latitude *float64) domain.Season {
	lower := strings.ToLower(name)
	southern := latitude != nil && *latitude < 0

	switch {
	case containsAny(lower, winterKeywords):
		if southern {
			return domain.SeasonSummer
		}
		return domain.SeasonWinter
	case containsAny(lower, summerKeywords):
		return domain.SeasonSummer
	case containsAny(lower, springKeywords):
		return domain.SeasonSpring
	case containsAny(lower, autumnKeywords):
		return domain.SeasonAutumn
	}

	if latitude != nil {
		abs := math.Abs(*latitude)
		if abs < 23.5 {
			return domain.SeasonSummer
		}
		if abs > 60 {
			return domain.SeasonWinter
		}
	}
	return domain.SeasonSummer
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
