package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Domenick1991/travelbooking/api"
	"github.com/Domenick1991/travelbooking/config"
	_ "github.com/Domenick1991/travelbooking/internal/docs"
	"github.com/Domenick1991/travelbooking/internal/service/account"
	"github.com/Domenick1991/travelbooking/internal/service/admin"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/Domenick1991/travelbooking/internal/service/cart"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/Domenick1991/travelbooking/internal/service/destinations"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 5 * time.Second

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Catalog      catalog.CatalogUseCase
	Cart         cart.CartUseCase
	Booking      booking.BookingUseCase
	Admin        admin.AdminUseCase
	Account      account.AccountUseCase
	Destinations destinations.DestinationUseCase
	Tokens       api.TokenParser
}

// NewRouter mounts every handler under /api/v1 and the swagger UI under
// /swagger.
func NewRouter(cfg config.HTTPConfig, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID(), api.Logger(), corsMiddleware(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	v1 := router.Group("/api/v1")
	authenticated := api.Authenticate(svc.Tokens)

	api.NewAccountHandler(svc.Account).Register(v1.Group("/auth"))
	api.NewProfileHandler(svc.Account).Register(v1.Group("/me", authenticated))
	api.NewPackageHandler(svc.Catalog).Register(v1.Group("/packages"))
	api.NewDestinationHandler(svc.Destinations).Register(v1.Group("/destinations"))
	api.NewCartHandler(svc.Cart).Register(v1.Group("/cart", authenticated))
	api.NewBookingHandler(svc.Booking).Register(v1.Group("/bookings", authenticated))
	api.NewAdminHandler(svc.Catalog, svc.Admin).Register(v1.Group("/admin", authenticated, api.RequireAdmin()))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// Run serves handler on cfg.Address and blocks until ctx is canceled or the
// server fails.
func Run(ctx context.Context, cfg config.HTTPConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
