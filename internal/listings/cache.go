package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"carmatch-service/internal/metrics"
	"carmatch-service/internal/models"
)

const (
	cacheKeyPrefix = "listings:bounds:"
	// cellsPerDegree sets the grid bounds are widened to before caching.
	cellsPerDegree = 100
)

// CachedSource is a Redis read-through cache in front of a Source. The
// query is widened outward to a 0.01 degree grid so nearby viewports share
// entries, then narrowed back to the exact bounds. A nil client or any
// Redis error falls through to the wrapped source.
type CachedSource struct {
	next  Source
	redis *redis.Client
	ttl   time.Duration
	name  string
}

// NewCachedSource wraps next. name labels fetch metrics.
func NewCachedSource(next Source, rdb *redis.Client, ttl time.Duration, name string) *CachedSource {
	return &CachedSource{next: next, redis: rdb, ttl: ttl, name: name}
}

// InBounds implements Source.
func (s *CachedSource) InBounds(ctx context.Context, b models.Bounds) ([]models.CarListing, error) {
	start := time.Now()
	defer func() {
		metrics.ListingsFetchDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	}()

	wide := widen(b)
	key := cacheKey(wide)

	if cached, err := s.getFromCache(ctx, key); err == nil {
		var listings []models.CarListing
		if json.Unmarshal([]byte(cached), &listings) == nil {
			metrics.ListingsCacheLookups.WithLabelValues("hit").Inc()
			slog.Debug("cache hit", "key", key)
			return narrow(listings, b), nil
		}
	}
	metrics.ListingsCacheLookups.WithLabelValues("miss").Inc()

	listings, err := s.next.InBounds(ctx, wide)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	if data, err := json.Marshal(listings); err == nil {
		s.setCache(ctx, key, string(data))
	}
	return narrow(listings, b), nil
}

// Invalidate drops every cached bounds query.
func (s *CachedSource) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	iter := s.redis.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Error("failed to invalidate listings cache", "error", err)
	}
}

func (s *CachedSource) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *CachedSource) setCache(ctx context.Context, key, value string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, s.ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

// widen snaps b outward to the cache grid plus one cell of margin so float
// rounding can never shrink the query.
func widen(b models.Bounds) models.Bounds {
	return models.Bounds{
		North: (math.Ceil(b.North*cellsPerDegree) + 1) / cellsPerDegree,
		South: (math.Floor(b.South*cellsPerDegree) - 1) / cellsPerDegree,
		East:  (math.Ceil(b.East*cellsPerDegree) + 1) / cellsPerDegree,
		West:  (math.Floor(b.West*cellsPerDegree) - 1) / cellsPerDegree,
	}
}

func narrow(listings []models.CarListing, b models.Bounds) []models.CarListing {
	out := make([]models.CarListing, 0, len(listings))
	for _, l := range listings {
		if b.Contains(l.Lat, l.Lng) {
			out = append(out, l)
		}
	}
	return out
}

func cacheKey(b models.Bounds) string {
	return fmt.Sprintf("%s%.2f:%.2f:%.2f:%.2f", cacheKeyPrefix, b.North, b.South, b.East, b.West)
}
