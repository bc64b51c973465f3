// Package repomock provides testify mocks for the repository interfaces.
package repomock

import (
	"context"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type PackageRepository struct {
	mock.Mock
}

func (m *PackageRepository) ListActive(ctx context.Context) ([]domain.TravelPackage, error) {
	args := m.Called(ctx)
	return packages(args.Get(0)), args.Error(1)
}

func (m *PackageRepository) ListActiveBySeason(ctx context.Context, season domain.Season) ([]domain.TravelPackage, error) {
	args := m.Called(ctx, season)
	return packages(args.Get(0)), args.Error(1)
}

func (m *PackageRepository) ListAll(ctx context.Context, includeInactive bool) ([]domain.TravelPackage, error) {
	args := m.Called(ctx, includeInactive)
	return packages(args.Get(0)), args.Error(1)
}

func (m *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *PackageRepository) Create(ctx context.Context, pkg *domain.TravelPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepository) Update(ctx context.Context, pkg *domain.TravelPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *PackageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PackageRepository) ToggleActive(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *PackageRepository) Counts(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	args := m.Called(ctx, id, isAdmin)
	return args.Error(0)
}

func (m *UserRepository) ToggleAdmin(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartLine), args.Error(1)
}

func (m *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartRepository) UpdateForUser(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *CartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) Count(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) Checkout(ctx context.Context, userID int64, newReference func() string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *BookingRepository) GetDetails(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetails), args.Error(1)
}

func (m *BookingRepository) GetDetailsForUser(ctx context.Context, id, userID int64) (*domain.BookingDetails, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetails), args.Error(1)
}

func (m *BookingRepository) ListDetails(ctx context.Context) ([]domain.BookingDetails, error) {
	args := m.Called(ctx)
	return details(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) ListDetailsByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, status)
	return details(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) ListDetailsForUser(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, userID)
	return details(args.Get(0)), args.Error(1)
}

// Modify and ModifyForUser run fn against the booking configured as the first
// return value, with the package price configured as the second, the way the
// repository does under its row lock.
func (m *BookingRepository) Modify(ctx context.Context, id int64, fn repository.ModifyFunc) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	return runModify(args, fn)
}

func (m *BookingRepository) ModifyForUser(ctx context.Context, id, userID int64, fn repository.ModifyFunc) (*domain.Booking, error) {
	args := m.Called(ctx, id, userID)
	return runModify(args, fn)
}

func (m *BookingRepository) CompleteEndedBefore(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func runModify(args mock.Arguments, fn repository.ModifyFunc) (*domain.Booking, error) {
	if err := args.Error(2); err != nil {
		return nil, err
	}
	b := *args.Get(0).(*domain.Booking)
	if err := fn(&b, args.Get(1).(decimal.Decimal)); err != nil {
		return nil, err
	}
	return &b, nil
}

func packages(v any) []domain.TravelPackage {
	if v == nil {
		return nil
	}
	return v.([]domain.TravelPackage)
}

func details(v any) []domain.BookingDetails {
	if v == nil {
		return nil
	}
	return v.([]domain.BookingDetails)
}

var (
	_ repository.PackageRepository = (*PackageRepository)(nil)
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.CartRepository    = (*CartRepository)(nil)
	_ repository.BookingRepository = (*BookingRepository)(nil)
)
