package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

// TotalPrice is the price of a selection: per-guest package price times the
// number of guests, rounded to cents.
func TotalPrice(price decimal.Decimal, guests int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(guests))).Round(2)
}

func ValidateGuests(guests int) error {
	if guests < MinGuests || guests > MaxGuests {
		return fmt.Errorf("%w: number of guests must be between %d and %d", ErrValidation, MinGuests, MaxGuests)
	}
	return nil
}

func ValidateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}
	return nil
}

// Selection is the user-chosen part of a cart item or booking.
type Selection struct {
	StartDate       time.Time
	EndDate         time.Time
	NumberOfGuests  int
	SpecialRequests *string
}

func (s Selection) Validate() error {
	if err := ValidateGuests(s.NumberOfGuests); err != nil {
		return err
	}
	return ValidateDates(s.StartDate, s.EndDate)
}
