package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// ParseSeason lowercases s and checks it against the four catalog seasons.
func ParseSeason(s string) (Season, error) {
	season := Season(strings.ToLower(strings.TrimSpace(s)))
	switch season {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return season, nil
	}
	return "", fmt.Errorf("%w: unknown season %q", ErrValidation, s)
}

type TravelPackage struct {
	ID               int64           `json:"id"`
	Destination      string          `json:"destination"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Season           Season          `json:"season"`
	ImageURL         string          `json:"image_url"`
	DefaultStartDate time.Time       `json:"default_start_date"`
	DefaultEndDate   time.Time       `json:"default_end_date"`
	DurationDays     int             `json:"duration_days"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

const (
	maxDestinationLen = 100
	maxDescriptionLen = 200
)

// maxPackagePrice is the largest value the NUMERIC(10,2) price column holds.
var maxPackagePrice = decimal.RequireFromString("99999999.99")

// PackageInput carries the admin-editable fields of a package.
type PackageInput struct {
	Destination      string
	Description      string
	Price            decimal.Decimal
	Season           string
	ImageURL         string
	DefaultStartDate time.Time
	DefaultEndDate   time.Time
	DurationDays     int
	IsActive         bool
}

// Normalize validates the input and returns the package fields it describes.
// DurationDays falls back to the number of days between the default dates
// when it is not positive.
func (in PackageInput) Normalize() (TravelPackage, error) {
	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		return TravelPackage{}, fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if len([]rune(destination)) > maxDestinationLen {
		return TravelPackage{}, fmt.Errorf("%w: destination must be at most %d characters", ErrValidation, maxDestinationLen)
	}
	description := strings.TrimSpace(in.Description)
	if len([]rune(description)) > maxDescriptionLen {
		return TravelPackage{}, fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLen)
	}
	if in.Price.IsNegative() {
		return TravelPackage{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if in.Price.Round(2).GreaterThan(maxPackagePrice) {
		return TravelPackage{}, fmt.Errorf("%w: price must be at most %s", ErrValidation, maxPackagePrice.StringFixed(2))
	}
	season, err := ParseSeason(in.Season)
	if err != nil {
		return TravelPackage{}, err
	}
	if err := ValidateDates(in.DefaultStartDate, in.DefaultEndDate); err != nil {
		return TravelPackage{}, err
	}

	duration := in.DurationDays
	if duration <= 0 {
		duration = DaysBetween(in.DefaultStartDate, in.DefaultEndDate)
	}

	return TravelPackage{
		Destination:      destination,
		Description:      description,
		Price:            in.Price.Round(2),
		Season:           season,
		ImageURL:         strings.TrimSpace(in.ImageURL),
		DefaultStartDate: in.DefaultStartDate,
		DefaultEndDate:   in.DefaultEndDate,
		DurationDays:     duration,
		IsActive:         in.IsActive,
	}, nil
}

// DaysBetween returns the whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
