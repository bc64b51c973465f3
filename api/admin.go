package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/admin"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminHandler serves the back office. The router group it is registered on
// must run Authenticate and RequireAdmin; the services check the caller again.
type AdminHandler struct {
	catalog catalog.CatalogUseCase
	admin   admin.AdminUseCase
}

type packageRequest struct {
	Destination      string          `json:"destination"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Season           string          `json:"season"`
	ImageURL         string          `json:"image_url"`
	DefaultStartDate string          `json:"default_start_date"`
	DefaultEndDate   string          `json:"default_end_date"`
	DurationDays     int             `json:"duration_days"`
	IsActive         *bool           `json:"is_active"`
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r packageRequest) toInput() (domain.PackageInput, error) {
	start, err := parseDate("default_start_date", r.DefaultStartDate)
	if err != nil {
		return domain.PackageInput{}, err
	}
	end, err := parseDate("default_end_date", r.DefaultEndDate)
	if err != nil {
		return domain.PackageInput{}, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.PackageInput{
		Destination:      r.Destination,
		Description:      r.Description,
		Price:            r.Price,
		Season:           r.Season,
		ImageURL:         r.ImageURL,
		DefaultStartDate: start,
		DefaultEndDate:   end,
		DurationDays:     r.DurationDays,
		IsActive:         active,
	}, nil
}

func NewAdminHandler(catalog catalog.CatalogUseCase, admin admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{catalog: catalog, admin: admin}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/packages", h.listPackages)
	router.POST("/packages", h.createPackage)
	router.PUT("/packages/:id", h.updatePackage)
	router.DELETE("/packages/:id", h.deletePackage)
	router.POST("/packages/:id/toggle", h.togglePackage)

	router.GET("/bookings", h.listBookings)
	router.GET("/bookings/:id", h.getBooking)
	router.PUT("/bookings/:id/status", h.setStatus)

	router.GET("/stats", h.stats)

	router.GET("/users", h.listUsers)
	router.POST("/users/:id/toggle-admin", h.toggleAdmin)
}

func (h *AdminHandler) listPackages(c *gin.Context) {
	includeInactive := true
	if v := c.Query("include_inactive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, "invalid include_inactive")
			return
		}
		includeInactive = b
	}

	packages, err := h.catalog.ListAll(c.Request.Context(), callerFrom(c), includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *AdminHandler) createPackage(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	pkg, err := h.catalog.Create(c.Request.Context(), callerFrom(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *AdminHandler) updatePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(c, err)
		return
	}

	pkg, err := h.catalog.Update(c.Request.Context(), callerFrom(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *AdminHandler) deletePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), callerFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) togglePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pkg, err := h.catalog.ToggleActive(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *AdminHandler) listBookings(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		bookings []domain.BookingDetails
		err      error
	)
	if status := c.Query("status"); status != "" {
		bookings, err = h.admin.ListBookingsByStatus(ctx, callerFrom(c), status)
	} else {
		bookings, err = h.admin.ListBookings(ctx, callerFrom(c))
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) getBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.admin.GetBooking(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *AdminHandler) setStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.admin.SetStatus(c.Request.Context(), callerFrom(c), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.admin.DashboardStats(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) toggleAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.admin.ToggleAdmin(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
