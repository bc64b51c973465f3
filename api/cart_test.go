package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/cart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func july(day int) time.Time {
	return time.Date(2026, time.July, day, 0, 0, 0, 0, time.UTC)
}

func TestCartHandler_add(t *testing.T) {
	mockService := &MockCartUseCase{}
	router := newTestRouter(testUser, "/cart", NewCartHandler(mockService).Register)

	notes := "sea view"
	input := cart.AddInput{
		PackageID: 3,
		Selection: domain.Selection{StartDate: july(1), EndDate: july(8), NumberOfGuests: 2, SpecialRequests: &notes},
	}
	mockService.On("Add", mock.Anything, testUser, input).Return(&domain.CartItem{ID: 11, UserID: 7, PackageID: 3, NumberOfGuests: 2}, nil).Once()

	body := `{"package_id":3,"start_date":"2026-07-01","end_date":"2026-07-08","number_of_guests":2,"special_requests":"sea view"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":11`)
	mockService.AssertExpectations(t)
}

func TestCartHandler_addRejectsBadInput(t *testing.T) {
	mockService := &MockCartUseCase{}
	router := newTestRouter(testUser, "/cart", NewCartHandler(mockService).Register)

	for name, body := range map[string]string{
		"malformed json": `{"package_id":`,
		"bad date":       `{"package_id":3,"start_date":"01/07/2026","end_date":"2026-07-08","number_of_guests":2}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	mockService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartHandler_updateAndRemove(t *testing.T) {
	mockService := &MockCartUseCase{}
	router := newTestRouter(testUser, "/cart", NewCartHandler(mockService).Register)

	sel := domain.Selection{StartDate: july(2), EndDate: july(9), NumberOfGuests: 4}
	mockService.On("Update", mock.Anything, testUser, int64(11), sel).Return(&domain.CartItem{ID: 11, NumberOfGuests: 4}, nil).Once()
	mockService.On("Update", mock.Anything, testUser, int64(99), sel).Return(nil, domain.ErrNotFound).Once()
	mockService.On("Remove", mock.Anything, testUser, int64(11)).Return(nil).Once()
	mockService.On("Remove", mock.Anything, testUser, int64(99)).Return(domain.ErrNotFound).Once()

	body := `{"start_date":"2026-07-02","end_date":"2026-07-09","number_of_guests":4}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/cart/11", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/cart/99", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/11", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestCartHandler_listClearSummary(t *testing.T) {
	mockService := &MockCartUseCase{}
	router := newTestRouter(testUser, "/cart", NewCartHandler(mockService).Register)

	lines := []domain.CartLine{{
		Item:       domain.CartItem{ID: 1, NumberOfGuests: 2},
		Package:    domain.TravelPackage{ID: 3, Destination: "Bali"},
		TotalPrice: decimal.RequireFromString("3000"),
	}}
	mockService.On("List", mock.Anything, testUser).Return(lines, nil).Once()
	mockService.On("Clear", mock.Anything, testUser).Return(int64(1), nil).Once()
	mockService.On("Summary", mock.Anything, testUser).Return(&cart.Summary{Lines: lines, Count: 1, Total: decimal.RequireFromString("3000")}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bali")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart/summary", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), `"total":"3000"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":1}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestCartHandler_anonymousCallerIsUnauthorized(t *testing.T) {
	mockService := &MockCartUseCase{}
	router := newTestRouter(domain.Caller{}, "/cart", NewCartHandler(mockService).Register)
	mockService.On("List", mock.Anything, domain.Caller{}).Return([]domain.CartLine(nil), domain.ErrUnauthorized).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
