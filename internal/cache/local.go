package cache

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/karlseguin/ccache/v3"
)

// SearchCache keeps destination search results in process memory.
type SearchCache struct {
	local *ccache.Cache[[]domain.DestinationSuggestion]
	ttl   time.Duration
}

func NewSearchCache(maxSize int64, ttl time.Duration) *SearchCache {
	return &SearchCache{
		local: ccache.New(ccache.Configure[[]domain.DestinationSuggestion]().MaxSize(maxSize)),
		ttl:   ttl,
	}
}

func (c *SearchCache) Get(key string) ([]domain.DestinationSuggestion, bool) {
	item := c.local.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	return item.Value(), true
}

func (c *SearchCache) Set(key string, results []domain.DestinationSuggestion) {
	c.local.Set(key, results, c.ttl)
}

func (c *SearchCache) Stop() {
	c.local.Stop()
}
