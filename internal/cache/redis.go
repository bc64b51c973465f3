package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const activePackagesKey = "cache:packages:active"

type RedisCache struct {
	client      *redis.Client
	packagesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, packagesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		packagesTTL: packagesTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetActivePackages returns nil without an error on a cache miss.
func (c *RedisCache) GetActivePackages(ctx context.Context) ([]domain.TravelPackage, error) {
	data, err := c.client.Get(ctx, activePackagesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var packages []domain.TravelPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *RedisCache) SetActivePackages(ctx context.Context, packages []domain.TravelPackage) error {
	payload, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activePackagesKey, payload, c.packagesTTL).Err()
}

func (c *RedisCache) InvalidatePackages(ctx context.Context) error {
	return c.client.Del(ctx, activePackagesKey).Err()
}
