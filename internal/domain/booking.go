package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

type Booking struct {
	ID              int64           `json:"id"`
	Reference       string          `json:"reference"`
	UserID          int64           `json:"user_id"`
	PackageID       int64           `json:"package_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	NumberOfGuests  int             `json:"number_of_guests"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          BookingStatus   `json:"status"`
	BookedAt        time.Time       `json:"booked_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}

// SetStatus applies an administrative status change. There is no guard on the
// current status. Confirming stamps ConfirmedAt, cancelling stamps CancelledAt.
func (b *Booking) SetStatus(status BookingStatus, now time.Time) {
	b.Status = status
	switch status {
	case BookingStatusConfirmed:
		b.ConfirmedAt = &now
	case BookingStatusCancelled:
		b.CancelledAt = &now
	}
}

// Cancel is the owner-facing cancellation. A booking can be cancelled once.
func (b *Booking) Cancel(now time.Time) error {
	if b.Status == BookingStatusCancelled {
		return fmt.Errorf("%w: booking is already cancelled", ErrConflict)
	}
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	return nil
}

// Reschedule overwrites the selection and reprices it at the given package
// price. Cancelled bookings are rejected, the status is left as is.
func (b *Booking) Reschedule(sel Selection, price decimal.Decimal) error {
	if b.Status == BookingStatusCancelled {
		return fmt.Errorf("%w: cancelled bookings cannot be changed", ErrConflict)
	}
	b.StartDate = sel.StartDate
	b.EndDate = sel.EndDate
	b.NumberOfGuests = sel.NumberOfGuests
	b.SpecialRequests = sel.SpecialRequests
	b.TotalPrice = TotalPrice(price, sel.NumberOfGuests)
	return nil
}

// BookingDetails is a booking joined with the package and user it references.
type BookingDetails struct {
	Booking
	PackageDestination string `json:"package_destination"`
	PackageSeason      Season `json:"package_season"`
	PackageImageURL    string `json:"package_image_url"`
	UserEmail          string `json:"user_email"`
	UserName           string `json:"user_name"`
}

// BookingSummary backs the profile page counters.
type BookingSummary struct {
	TotalBookings     int             `json:"total_bookings"`
	CompletedBookings int             `json:"completed_bookings"`
	PendingBookings   int             `json:"pending_bookings"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
}

// SummarizeBookings counts pending and confirmed bookings together as pending
// and excludes cancelled bookings from the amount spent.
func SummarizeBookings(bookings []BookingDetails) BookingSummary {
	s := BookingSummary{TotalBookings: len(bookings), TotalSpent: decimal.Zero}
	for _, b := range bookings {
		switch b.Status {
		case BookingStatusCompleted:
			s.CompletedBookings++
		case BookingStatusPending, BookingStatusConfirmed:
			s.PendingBookings++
		}
		if b.Status != BookingStatusCancelled {
			s.TotalSpent = s.TotalSpent.Add(b.TotalPrice)
		}
	}
	return s
}
