package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(callerKey, testUser)

	body, _ := json.Marshal(map[string]any{
		"package_id":       4,
		"start_date":       "2026-07-01",
		"end_date":         "2026-07-05",
		"number_of_guests": 3,
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := booking.CreateInput{
		PackageID: 4,
		Selection: domain.Selection{StartDate: july(1), EndDate: july(5), NumberOfGuests: 3},
	}
	created := &domain.Booking{
		ID:             1,
		Reference:      "ref-1",
		UserID:         7,
		PackageID:      4,
		NumberOfGuests: 3,
		TotalPrice:     decimal.RequireFromString("1350"),
		Status:         domain.BookingStatusPending,
	}
	mockService.On("CreateDirect", c.Request.Context(), testUser, input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, "ref-1", got.Reference)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_createValidation(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	input := booking.CreateInput{
		PackageID: 4,
		Selection: domain.Selection{StartDate: july(1), EndDate: july(5), NumberOfGuests: 0},
	}
	mockService.On("CreateDirect", mock.Anything, testUser, input).Return(nil, domain.ErrValidation).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"package_id":4,"start_date":"2026-07-01","end_date":"2026-07-05","number_of_guests":0}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_checkout(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	mockService.On("Checkout", mock.Anything, testUser).Return([]domain.Booking{{ID: 1}, {ID: 2}}, nil).Once()
	mockService.On("Checkout", mock.Anything, testUser).Return([]domain.Booking(nil), nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/checkout", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	var got []domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/checkout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	mockService.On("Cancel", mock.Anything, testUser, int64(1)).Return(&domain.Booking{ID: 1, Status: domain.BookingStatusCancelled}, nil).Once()
	mockService.On("Cancel", mock.Anything, testUser, int64(1)).Return(nil, domain.ErrConflict).Once()
	mockService.On("Cancel", mock.Anything, testUser, int64(2)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/1/cancel", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"CANCELLED"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/1/cancel", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/2/cancel", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_update(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	sel := domain.Selection{StartDate: july(10), EndDate: july(15), NumberOfGuests: 2}
	mockService.On("Update", mock.Anything, testUser, int64(1), sel).
		Return(&domain.Booking{ID: 1, NumberOfGuests: 2, TotalPrice: decimal.RequireFromString("720")}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/bookings/1",
		strings.NewReader(`{"start_date":"2026-07-10","end_date":"2026-07-15","number_of_guests":2}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":"720"`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_readRoutes(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	details := domain.BookingDetails{Booking: domain.Booking{ID: 1}, PackageDestination: "Bali"}
	mockService.On("ListForUser", mock.Anything, testUser).Return([]domain.BookingDetails{details}, nil).Once()
	mockService.On("Get", mock.Anything, testUser, int64(1)).Return(&details, nil).Once()
	mockService.On("Summary", mock.Anything, testUser).Return(domain.BookingSummary{TotalBookings: 1, TotalSpent: decimal.RequireFromString("450")}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"package_destination":"Bali"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/summary", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_bookings":1`)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_voucher(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(testUser, "/bookings", NewBookingHandler(mockService).Register)

	pdf := []byte("%PDF-1.3 test")
	mockService.On("Voucher", mock.Anything, testUser, int64(1)).Return(pdf, "VOUCHER_ref-1.pdf", nil).Once()
	mockService.On("Voucher", mock.Anything, testUser, int64(2)).Return(nil, "", domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/1/voucher", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="VOUCHER_ref-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, w.Body.Bytes())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/2/voucher", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}
