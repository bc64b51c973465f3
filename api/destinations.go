package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/service/destinations"
	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	service destinations.DestinationUseCase
}

func NewDestinationHandler(service destinations.DestinationUseCase) *DestinationHandler {
	return &DestinationHandler{service: service}
}

func (h *DestinationHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *DestinationHandler) search(c *gin.Context) {
	results := h.service.Search(c.Request.Context(), c.Query("query"), c.Query("season"))
	if results == nil {
		results = []domain.DestinationSuggestion{}
	}
	c.JSON(http.StatusOK, results)
}
