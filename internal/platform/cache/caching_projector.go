// Package cache provides caching implementations for projection interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/usecase"
)

const (
	// DefaultTTL applies when no positive TTL is configured.
	DefaultTTL = 10 * time.Minute
	// DefaultNamespace prefixes every key written by CachingProjector.
	DefaultNamespace = "projections"

	// keyVersion changes whenever the engine's output for a given scenario does.
	keyVersion = "v1"
)

// CachingProjector decorates a PlatformProjector with Redis caching.
// Projections are pure functions of the scenario, so entries never need
// invalidation beyond their TTL.
type CachingProjector struct {
	inner     usecase.PlatformProjector
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingProjector decorates inner with Redis caching.
// A nil rdb disables caching. If ttl is not positive it defaults to DefaultTTL,
// and an empty namespace defaults to DefaultNamespace.
func NewCachingProjector(rdb *redis.Client, ttl time.Duration, inner usecase.PlatformProjector, namespace string) *CachingProjector {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &CachingProjector{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Project returns the cached projection for s, computing and storing it on a miss.
func (c *CachingProjector) Project(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Project(ctx, s)
	}

	key, err := c.cacheKey(s)
	if err != nil {
		return c.inner.Project(ctx, s)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.PlatformProjection
		if err := json.Unmarshal(b, &out); err == nil {
			slog.Debug("projection cache hit", "key", key)
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the engine
	out, err := c.inner.Project(ctx, s)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("projection cache write failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// Available reports whether the cache backend answers a ping.
func (c *CachingProjector) Available(ctx context.Context) bool {
	if c.rdb == nil {
		return false
	}
	return c.rdb.Ping(ctx).Err() == nil
}

// cacheKey hashes the normalized scenario. Equal scenarios share a key
// because encoding/json emits struct fields in declaration order.
func (c *CachingProjector) cacheKey(s entity.Scenario) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode scenario: %w", err)
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%s:%s", c.namespace, keyVersion, hex.EncodeToString(sum[:])), nil
}
