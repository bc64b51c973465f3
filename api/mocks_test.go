package api

import (
	"context"
	"time"

	"github.com/Domenick1991/travelbooking/internal/auth"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/account"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/Domenick1991/travelbooking/internal/service/cart"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of catalog.CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListActive(ctx context.Context) ([]domain.TravelPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) ListBySeason(ctx context.Context, season string) ([]domain.TravelPackage, error) {
	args := m.Called(ctx, season)
	return args.Get(0).([]domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) ListAll(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.TravelPackage, error) {
	args := m.Called(ctx, caller, includeInactive)
	return args.Get(0).([]domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) Create(ctx context.Context, caller domain.Caller, input domain.PackageInput) (*domain.TravelPackage, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) Update(ctx context.Context, caller domain.Caller, id int64, input domain.PackageInput) (*domain.TravelPackage, error) {
	args := m.Called(ctx, caller, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

func (m *MockCatalogUseCase) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockCatalogUseCase) ToggleActive(ctx context.Context, caller domain.Caller, id int64) (*domain.TravelPackage, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPackage), args.Error(1)
}

// MockCartUseCase is a mock implementation of cart.CartUseCase
type MockCartUseCase struct {
	mock.Mock
}

func (m *MockCartUseCase) List(ctx context.Context, caller domain.Caller) ([]domain.CartLine, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).([]domain.CartLine), args.Error(1)
}

func (m *MockCartUseCase) Add(ctx context.Context, caller domain.Caller, input cart.AddInput) (*domain.CartItem, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartUseCase) Update(ctx context.Context, caller domain.Caller, itemID int64, sel domain.Selection) (*domain.CartItem, error) {
	args := m.Called(ctx, caller, itemID, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartUseCase) Remove(ctx context.Context, caller domain.Caller, itemID int64) error {
	return m.Called(ctx, caller, itemID).Error(0)
}

func (m *MockCartUseCase) Clear(ctx context.Context, caller domain.Caller) (int64, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartUseCase) Count(ctx context.Context, caller domain.Caller) (int, error) {
	args := m.Called(ctx, caller)
	return args.Int(0), args.Error(1)
}

func (m *MockCartUseCase) Total(ctx context.Context, caller domain.Caller) (decimal.Decimal, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCartUseCase) Summary(ctx context.Context, caller domain.Caller) (*cart.Summary, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Summary), args.Error(1)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateDirect(ctx context.Context, caller domain.Caller, input booking.CreateInput) (*domain.Booking, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Checkout(ctx context.Context, caller domain.Caller) ([]domain.Booking, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetails), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, caller domain.Caller, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Update(ctx context.Context, caller domain.Caller, id int64, sel domain.Selection) (*domain.Booking, error) {
	args := m.Called(ctx, caller, id, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForUser(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockBookingUseCase) Summary(ctx context.Context, caller domain.Caller) (domain.BookingSummary, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(domain.BookingSummary), args.Error(1)
}

func (m *MockBookingUseCase) Voucher(ctx context.Context, caller domain.Caller, id int64) ([]byte, string, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockBookingUseCase) CompletePast(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockAdminUseCase is a mock implementation of admin.AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) ListBookings(ctx context.Context, caller domain.Caller) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockAdminUseCase) ListBookingsByStatus(ctx context.Context, caller domain.Caller, status string) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, caller, status)
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockAdminUseCase) GetBooking(ctx context.Context, caller domain.Caller, id int64) (*domain.BookingDetails, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetails), args.Error(1)
}

func (m *MockAdminUseCase) SetStatus(ctx context.Context, caller domain.Caller, id int64, status string) (*domain.Booking, error) {
	args := m.Called(ctx, caller, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockAdminUseCase) DashboardStats(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAdminUseCase) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockAdminUseCase) ToggleAdmin(ctx context.Context, caller domain.Caller, userID int64) (*domain.User, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAccountUseCase is a mock implementation of account.AccountUseCase
type MockAccountUseCase struct {
	mock.Mock
}

func (m *MockAccountUseCase) Register(ctx context.Context, input account.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountUseCase) Login(ctx context.Context, email, password string) (*domain.User, auth.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, auth.Token{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(auth.Token), args.Error(2)
}

func (m *MockAccountUseCase) Profile(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountUseCase) UpdateProfile(ctx context.Context, caller domain.Caller, input account.ProfileInput) (*domain.User, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountUseCase) EnsureAdmin(ctx context.Context, input account.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockDestinationUseCase is a mock implementation of destinations.DestinationUseCase
type MockDestinationUseCase struct {
	mock.Mock
}

func (m *MockDestinationUseCase) Search(ctx context.Context, query, season string) []domain.DestinationSuggestion {
	args := m.Called(ctx, query, season)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.DestinationSuggestion)
}

// MockTokenParser is a mock implementation of TokenParser
type MockTokenParser struct {
	mock.Mock
}

func (m *MockTokenParser) Parse(raw string) (domain.Caller, error) {
	args := m.Called(raw)
	return args.Get(0).(domain.Caller), args.Error(1)
}

var (
	testUser  = domain.Caller{UserID: 7}
	testAdmin = domain.Caller{UserID: 1, IsAdmin: true}
)

// newTestRouter mounts register on prefix. Requests through it act as caller.
func newTestRouter(caller domain.Caller, prefix string, register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group(prefix, func(c *gin.Context) {
		if caller.Authenticated() {
			c.Set(callerKey, caller)
		}
		c.Next()
	})
	register(group)
	return router
}
