package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PackageID int64 `json:"package_id"`
	selectionRequest
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.POST("/checkout", h.checkout)
	router.GET("/summary", h.summary)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.POST("/:id/cancel", h.cancel)
	router.GET("/:id/voucher", h.voucher)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sel, err := req.toSelection()
	if err != nil {
		writeError(c, err)
		return
	}

	b, err := h.service.CreateDirect(c.Request.Context(), callerFrom(c), booking.CreateInput{PackageID: req.PackageID, Selection: sel})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) checkout(c *gin.Context) {
	bookings, err := h.service.Checkout(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(bookings) == 0 {
		c.JSON(http.StatusOK, []domain.Booking{})
		return
	}
	c.JSON(http.StatusCreated, bookings)
}

func (h *BookingHandler) summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.service.Get(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *BookingHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sel, err := req.toSelection()
	if err != nil {
		writeError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), callerFrom(c), id, sel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.service.Cancel(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) voucher(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := h.service.Voucher(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
