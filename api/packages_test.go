package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackageHandler_list(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	handler := NewPackageHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/packages", nil)

	packages := []domain.TravelPackage{
		{ID: 1, Destination: "Bali", Price: decimal.RequireFromString("1500.00"), Season: domain.SeasonSummer, IsActive: true},
	}
	mockService.On("ListActive", c.Request.Context()).Return(packages, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domain.TravelPackage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Bali", got[0].Destination)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("1500")))

	mockService.AssertExpectations(t)
}

func TestPackageHandler_listBySeason(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newTestRouter(domain.Caller{}, "/packages", NewPackageHandler(mockService).Register)

	mockService.On("ListBySeason", mock.Anything, "Winter").Return([]domain.TravelPackage{{ID: 3, Season: domain.SeasonWinter}}, nil).Once()
	mockService.On("ListBySeason", mock.Anything, "monsoon").Return([]domain.TravelPackage(nil), fmt.Errorf("%w: unknown season", domain.ErrValidation)).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages?season=Winter", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"season":"winter"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages?season=monsoon", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNotCalled(t, "ListActive", mock.Anything)
	mockService.AssertExpectations(t)
}

func TestPackageHandler_get(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newTestRouter(domain.Caller{}, "/packages", NewPackageHandler(mockService).Register)

	mockService.On("GetByID", mock.Anything, int64(5)).Return(&domain.TravelPackage{ID: 5, Destination: "Kyoto"}, nil).Once()
	mockService.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages/5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kyoto")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages/404", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestPackageHandler_listFailure(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newTestRouter(domain.Caller{}, "/packages", NewPackageHandler(mockService).Register)
	mockService.On("ListActive", mock.Anything).Return([]domain.TravelPackage(nil), fmt.Errorf("db down")).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/packages", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
