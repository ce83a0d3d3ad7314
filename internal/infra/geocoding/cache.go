package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DioGolang/GeoCourier/internal/application/port/outbound"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

const cacheType = "geocode"

// CachedGeocoder fronts a Geocoder with a Redis result cache. Cache failures
// fall through to the provider; the cache can only make things faster, never
// make them fail.
type CachedGeocoder struct {
	next    outbound.Geocoder
	client  *redis.Client
	ttl     time.Duration
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewCachedGeocoder(next outbound.Geocoder, client *redis.Client, ttl time.Duration, log logger.Logger, m metrics.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		next:    next,
		client:  client,
		ttl:     ttl,
		logger:  log,
		metrics: m,
	}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string, opts outbound.SearchOptions) []entity.ExternalPlace {
	key := searchKey(query, opts)

	if cached, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var results []entity.ExternalPlace
		if err := json.Unmarshal(cached, &results); err == nil {
			c.metrics.IncCacheHit(cacheType)
			return results
		}
	} else if err != redis.Nil {
		c.logger.Warn(ctx, "geocode cache read failed", logger.WithError(err))
	}
	c.metrics.IncCacheMiss(cacheType)

	results := c.next.Search(ctx, query, opts)
	if len(results) > 0 {
		if payload, err := json.Marshal(results); err == nil {
			if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.Warn(ctx, "geocode cache write failed", logger.WithError(err))
			}
		}
	}
	return results
}

func (c *CachedGeocoder) Reverse(ctx context.Context, lat, lon float64) *entity.ExternalPlace {
	// Reverse lookups rarely repeat with identical coordinates; not cached.
	return c.next.Reverse(ctx, lat, lon)
}

func searchKey(query string, opts outbound.SearchOptions) string {
	return fmt.Sprintf("geocode:search:%s:%d:%s:%t",
		strings.ToLower(strings.TrimSpace(query)), opts.Limit, opts.CountryCodes, opts.Bounded)
}
