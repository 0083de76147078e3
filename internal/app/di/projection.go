// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"treasury_backend/internal/feature/projection/adapters"
	projectionhandler "treasury_backend/internal/feature/projection/transport/handler"
	"treasury_backend/internal/feature/projection/usecase"
	"treasury_backend/internal/platform/cache"
	platformhandler "treasury_backend/internal/platform/http/handler"
)

// NewProjector creates the PlatformProjector used by the server.
// If Redis is available, engine results are cached there.
// Otherwise, every request runs the engine.
func NewProjector(rdb *redis.Client, ttl time.Duration) usecase.PlatformProjector {
	engine := adapters.NewEngineProjector()
	if rdb != nil {
		return cache.NewCachingProjector(rdb, ttl, engine, cache.DefaultNamespace)
	}
	return engine
}

// NewHealthHandler reports on the cache behind projector, if it has one.
func NewHealthHandler(projector usecase.PlatformProjector) *platformhandler.HealthHandler {
	if checker, ok := projector.(platformhandler.CacheChecker); ok {
		return platformhandler.NewHealthHandler(checker)
	}
	return platformhandler.NewHealthHandler(nil)
}

// NewProjectionHandler creates the projection HTTP handler on top of projector.
func NewProjectionHandler(projector usecase.PlatformProjector) *projectionhandler.ProjectionHandler {
	return projectionhandler.NewProjectionHandler(usecase.NewProjectionUsecase(projector))
}
