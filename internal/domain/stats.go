package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const recentBookingsLimit = 10

type DashboardStats struct {
	TotalBookings     int              `json:"total_bookings"`
	PendingBookings   int              `json:"pending_bookings"`
	ConfirmedBookings int              `json:"confirmed_bookings"`
	CancelledBookings int              `json:"cancelled_bookings"`
	CompletedBookings int              `json:"completed_bookings"`
	TotalPackages     int              `json:"total_packages"`
	ActivePackages    int              `json:"active_packages"`
	TotalUsers        int              `json:"total_users"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	MonthlyRevenue    decimal.Decimal  `json:"monthly_revenue"`
	BookingsBySeason  map[Season]int   `json:"bookings_by_season"`
	RecentBookings    []BookingDetails `json:"recent_bookings"`
}

// MonthStart returns midnight of the first day of t's month in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// BuildDashboardStats aggregates a full scan of bookings at wall-clock time now.
// Package and user counts are not derived from bookings and are left zero.
func BuildDashboardStats(bookings []BookingDetails, now time.Time) DashboardStats {
	monthStart := MonthStart(now)
	nextMonth := monthStart.AddDate(0, 1, 0)

	stats := DashboardStats{
		TotalBookings:    len(bookings),
		TotalRevenue:     decimal.Zero,
		MonthlyRevenue:   decimal.Zero,
		BookingsBySeason: make(map[Season]int),
	}

	for _, b := range bookings {
		switch b.Status {
		case BookingStatusPending:
			stats.PendingBookings++
		case BookingStatusConfirmed:
			stats.ConfirmedBookings++
		case BookingStatusCancelled:
			stats.CancelledBookings++
		case BookingStatusCompleted:
			stats.CompletedBookings++
		}
		if b.PackageSeason != "" {
			stats.BookingsBySeason[b.PackageSeason]++
		}
		if b.Status == BookingStatusCancelled {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(b.TotalPrice)
		if !b.BookedAt.Before(monthStart) && b.BookedAt.Before(nextMonth) {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(b.TotalPrice)
		}
	}

	recent := make([]BookingDetails, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].BookedAt.After(recent[j].BookedAt)
	})
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}
	stats.RecentBookings = recent

	return stats
}
