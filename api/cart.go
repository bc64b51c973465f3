package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	service cart.CartUseCase
}

type addToCartRequest struct {
	PackageID int64 `json:"package_id"`
	selectionRequest
}

func NewCartHandler(service cart.CartUseCase) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.add)
	router.DELETE("", h.clear)
	router.GET("/summary", h.summary)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *CartHandler) list(c *gin.Context) {
	lines, err := h.service.List(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *CartHandler) add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sel, err := req.toSelection()
	if err != nil {
		writeError(c, err)
		return
	}

	item, err := h.service.Add(c.Request.Context(), callerFrom(c), cart.AddInput{PackageID: req.PackageID, Selection: sel})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) update(c *gin.Context) {
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

	item, err := h.service.Update(c.Request.Context(), callerFrom(c), id, sel)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), callerFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) clear(c *gin.Context) {
	removed, err := h.service.Clear(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *CartHandler) summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
