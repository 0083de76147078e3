// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheChecker reports whether the projection cache backend is reachable.
type CacheChecker interface {
	Available(ctx context.Context) bool
}

// HealthHandler serves /healthz.
type HealthHandler struct {
	cache CacheChecker
}

// NewHealthHandler creates a HealthHandler. A nil cache reports "disabled".
func NewHealthHandler(cache CacheChecker) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health responds according to the HTTP method and prevents caching.
// The service stays healthy without a cache, so cache state never changes the status code.
func (h *HealthHandler) Health(c *gin.Context) {
	// Never cache health responses.
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": h.cacheStatus(c.Request.Context())})
	}
}

func (h *HealthHandler) cacheStatus(ctx context.Context) string {
	switch {
	case h.cache == nil:
		return "disabled"
	case h.cache.Available(ctx):
		return "up"
	default:
		return "down"
	}
}
