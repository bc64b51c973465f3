package api

import (
	"net/http"

	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	service catalog.CatalogUseCase
}

func NewPackageHandler(service catalog.CatalogUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *PackageHandler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if season := c.Query("season"); season != "" {
		packages, err := h.service.ListBySeason(ctx, season)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, packages)
		return
	}

	packages, err := h.service.ListActive(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pkg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}
