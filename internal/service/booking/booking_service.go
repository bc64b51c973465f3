package booking

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/events"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/voucher"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingUseCase interface {
	CreateDirect(ctx context.Context, caller domain.Caller, input CreateInput) (*domain.Booking, error)
	Checkout(ctx context.Context, caller domain.Caller) ([]domain.Booking, error)
	Get(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error)
	Cancel(ctx context.Context, caller domain.Caller, id int64) (*domain.Booking, error)
	Update(ctx context.Context, caller domain.Caller, id int64, sel domain.Selection) (*domain.Booking, error)
	ListForUser(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error)
	Summary(ctx context.Context, caller domain.Caller) (domain.BookingSummary, error)
	Voucher(ctx context.Context, caller domain.Caller, id int64) ([]byte, string, error)
	CompletePast(ctx context.Context, now time.Time) ([]domain.Booking, error)
}

type CreateInput struct {
	PackageID int64
	domain.Selection
}

type BookingService struct {
	bookings     repository.BookingRepository
	packages     repository.PackageRepository
	users        repository.UserRepository
	notifier     *events.Notifier
	now          func() time.Time
	newReference func() string
}

type BookingServiceOption func(*BookingService)

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithReferenceGenerator(gen func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newReference = gen
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	packages repository.PackageRepository,
	users repository.UserRepository,
	notifier *events.Notifier,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		packages:     packages,
		users:        users,
		notifier:     notifier,
		now:          time.Now,
		newReference: uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateDirect books a package without going through the cart.
func (s *BookingService) CreateDirect(ctx context.Context, caller domain.Caller, input CreateInput) (*domain.Booking, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Selection.Validate(); err != nil {
		return nil, err
	}
	pkg, err := s.packages.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:       s.newReference(),
		UserID:          caller.UserID,
		PackageID:       pkg.ID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
		TotalPrice:      domain.TotalPrice(pkg.Price, input.NumberOfGuests),
		Status:          domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifier.PublishLogged(ctx, events.TypeBookingCreated, *booking, s.emailFor(ctx, caller.UserID))
	return booking, nil
}

// Checkout converts the whole cart into pending bookings. An empty cart gives
// an empty result.
func (s *BookingService) Checkout(ctx context.Context, caller domain.Caller) ([]domain.Booking, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	bookings, err := s.bookings.Checkout(ctx, caller.UserID, s.newReference)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	email := s.emailFor(ctx, caller.UserID)
	for _, b := range bookings {
		s.notifier.PublishLogged(ctx, events.TypeBookingCreated, b, email)
	}
	log.Printf("checkout: user %d booked %d packages", caller.UserID, len(bookings))
	return bookings, nil
}

func (s *BookingService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.bookings.GetDetailsForUser(ctx, id, caller.UserID)
}

func (s *BookingService) Cancel(ctx context.Context, caller domain.Caller, id int64) (*domain.Booking, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	now := s.now().UTC()
	updated, err := s.bookings.ModifyForUser(ctx, id, caller.UserID, func(b *domain.Booking, _ decimal.Decimal) error {
		return b.Cancel(now)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PublishLogged(ctx, events.TypeBookingCancelled, *updated, s.emailFor(ctx, caller.UserID))
	return updated, nil
}

// Update changes dates, guests and notes and reprices the booking at the
// package's current price.
func (s *BookingService) Update(ctx context.Context, caller domain.Caller, id int64, sel domain.Selection) (*domain.Booking, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.bookings.ModifyForUser(ctx, id, caller.UserID, func(b *domain.Booking, price decimal.Decimal) error {
		return b.Reschedule(sel, price)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PublishLogged(ctx, events.TypeBookingUpdated, *updated, s.emailFor(ctx, caller.UserID))
	return updated, nil
}

func (s *BookingService) ListForUser(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.bookings.ListDetailsForUser(ctx, caller.UserID)
}

func (s *BookingService) Summary(ctx context.Context, caller domain.Caller) (domain.BookingSummary, error) {
	bookings, err := s.ListForUser(ctx, caller)
	if err != nil {
		return domain.BookingSummary{}, err
	}
	return domain.SummarizeBookings(bookings), nil
}

func (s *BookingService) Voucher(ctx context.Context, caller domain.Caller, id int64) ([]byte, string, error) {
	details, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, "", err
	}
	return voucher.Render(*details)
}

// CompletePast marks confirmed bookings that ended before today as completed.
func (s *BookingService) CompletePast(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	completed, err := s.bookings.CompleteEndedBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	for _, b := range completed {
		s.notifier.PublishLogged(ctx, events.TypeBookingCompleted, b, s.emailFor(ctx, b.UserID))
	}
	return completed, nil
}

// emailFor is best effort. A notification without an address is still
// published.
func (s *BookingService) emailFor(ctx context.Context, userID int64) string {
	if s.users == nil || !s.notifier.Enabled() {
		return ""
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("booking: lookup of user %d for notification failed: %v", userID, err)
		return ""
	}
	return u.Email
}

var _ BookingUseCase = (*BookingService)(nil)
