package admin

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/events"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/shopspring/decimal"
)

type AdminUseCase interface {
	ListBookings(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error)
	ListBookingsByStatus(ctx context.Context, caller domain.Caller, status string) ([]domain.BookingDetails, error)
	GetBooking(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error)
	SetStatus(ctx context.Context, caller domain.Caller, id int64, status string) (*domain.Booking, error)
	DashboardStats(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error)
	ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error)
	ToggleAdmin(ctx context.Context, caller domain.Caller, userID int64) (*domain.User, error)
}

type AdminService struct {
	bookings repository.BookingRepository
	packages repository.PackageRepository
	users    repository.UserRepository
	notifier *events.Notifier
	now      func() time.Time
}

func NewAdminService(
	bookings repository.BookingRepository,
	packages repository.PackageRepository,
	users repository.UserRepository,
	notifier *events.Notifier,
) *AdminService {
	return &AdminService{
		bookings: bookings,
		packages: packages,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *AdminService) ListBookings(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.bookings.ListDetails(ctx)
}

func (s *AdminService) ListBookingsByStatus(ctx context.Context, caller domain.Caller, status string) ([]domain.BookingDetails, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListDetailsByStatus(ctx, parsed)
}

func (s *AdminService) GetBooking(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.bookings.GetDetails(ctx, id)
}

// SetStatus applies any status to any booking. Unlike the owner-facing
// cancel, a cancelled booking can be moved back to another status here.
func (s *AdminService) SetStatus(ctx context.Context, caller domain.Caller, id int64, status string) (*domain.Booking, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	updated, err := s.bookings.Modify(ctx, id, func(b *domain.Booking, _ decimal.Decimal) error {
		b.SetStatus(parsed, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("admin: user %d set booking %d to %s", caller.UserID, id, parsed)

	if s.notifier.Enabled() {
		var email string
		if u, err := s.users.GetByID(ctx, updated.UserID); err == nil {
			email = u.Email
		}
		s.notifier.PublishLogged(ctx, events.TypeBookingStatusChanged, *updated, email)
	}
	return updated, nil
}

func (s *AdminService) DashboardStats(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.BuildDashboardStats(bookings, s.now())

	if stats.TotalPackages, stats.ActivePackages, err = s.packages.Counts(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *AdminService) ToggleAdmin(ctx context.Context, caller domain.Caller, userID int64) (*domain.User, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.users.ToggleAdmin(ctx, userID)
}

var _ AdminUseCase = (*AdminService)(nil)
