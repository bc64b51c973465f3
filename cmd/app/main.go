package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/auth"
	"github.com/Domenick1991/travelbooking/internal/bootstrap"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/account"
	"github.com/Domenick1991/travelbooking/internal/service/admin"
	"github.com/Domenick1991/travelbooking/internal/service/booking"
	"github.com/Domenick1991/travelbooking/internal/service/cart"
	"github.com/Domenick1991/travelbooking/internal/service/catalog"
	"github.com/Domenick1991/travelbooking/internal/service/destinations"
	"github.com/Domenick1991/travelbooking/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

const searchCacheSize = 1000

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(ctx, cfg.Database.DSN()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse database config: %v", err)
	}
	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	var packageCache catalog.Cache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, package cache degraded: %v", err)
		}
		packageCache = redisCache
	}

	searchCache := cache.NewSearchCache(searchCacheSize, time.Duration(cfg.Destinations.CacheTTLSeconds)*time.Second)
	defer searchCache.Stop()

	notifier, closeNotifier := bootstrap.NewNotifier(ctx, cfg)
	defer closeNotifier()

	packageRepo := repository.NewPackageRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	accountService := account.NewAccountService(userRepo, issuer, cfg.Auth.BcryptCost)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if _, err := accountService.EnsureAdmin(ctx, account.RegisterInput{
			FirstName: cfg.Admin.FirstName,
			LastName:  cfg.Admin.LastName,
			Email:     cfg.Admin.Email,
			Password:  cfg.Admin.Password,
		}); err != nil {
			log.Fatalf("ensure admin: %v", err)
		}
	}

	geocoder := destinations.NewNominatimClient(
		cfg.Destinations.NominatimURL,
		cfg.Destinations.UserAgent,
		time.Duration(cfg.Destinations.TimeoutSeconds)*time.Second,
	)

	services := bootstrap.Services{
		Catalog:      catalog.NewCatalogService(packageRepo, packageCache),
		Cart:         cart.NewCartService(cartRepo, packageRepo),
		Booking:      booking.NewBookingService(bookingRepo, packageRepo, userRepo, notifier),
		Admin:        admin.NewAdminService(bookingRepo, packageRepo, userRepo, notifier),
		Account:      accountService,
		Destinations: destinations.NewDestinationService(geocoder, searchCache),
		Tokens:       issuer,
	}

	if err := bootstrap.Run(ctx, cfg.HTTP, bootstrap.NewRouter(cfg.HTTP, services)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
