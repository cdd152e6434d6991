package analytics

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// aggregateTTL keeps repeated dashboard loads from re-scanning the backend.
const aggregateTTL = 30 * time.Second

// CachedRecorder memoizes aggregations per range for a short TTL. Recording
// a visit drops the cache so the dashboard never lags more than one TTL.
type CachedRecorder struct {
	next  Recorder
	cache *gocache.Cache
}

// NewCachedRecorder wraps a recorder with the aggregation cache.
func NewCachedRecorder(next Recorder) *CachedRecorder {
	return &CachedRecorder{
		next:  next,
		cache: gocache.New(aggregateTTL, 2*aggregateTTL),
	}
}

// Record passes through and invalidates cached aggregations.
func (c *CachedRecorder) Record(ctx context.Context, v Visit) error {
	err := c.next.Record(ctx, v)
	if err == nil {
		c.cache.Flush()
	}

	return err
}

// Aggregate serves from cache when a fresh summary for the range exists.
func (c *CachedRecorder) Aggregate(ctx context.Context, rng Range) (*Summary, error) {
	key := rng.Key()

	if cached, ok := c.cache.Get(key); ok {
		if sum, ok := cached.(*Summary); ok {
			return sum, nil
		}
	}

	sum, err := c.next.Aggregate(ctx, rng)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, sum, gocache.DefaultExpiration)

	return sum, nil
}
