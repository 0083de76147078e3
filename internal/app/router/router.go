// Package router assembles the HTTP routes of the projection server.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	projectionhandler "treasury_backend/internal/feature/projection/transport/handler"
	platformhandler "treasury_backend/internal/platform/http/handler"
	jwtmw "treasury_backend/internal/platform/jwt"
	"treasury_backend/internal/shared/ratelimiter"
)

// Options configures cross-cutting middleware.
type Options struct {
	JWTSecret          string
	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

// NewRouter wires the health and projection handlers.
func NewRouter(opts Options, health *platformhandler.HealthHandler, projections *projectionhandler.ProjectionHandler) *gin.Engine {
	r := gin.Default()

	// Browser presentation layer
	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{projectionhandler.HeaderRunID},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// No auth.
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	v1 := r.Group("/v1")
	v1.Use(ratelimiter.NewRateLimiter(opts.RateLimitPerMinute, 0).Middleware())
	if opts.JWTSecret != "" {
		v1.Use(jwtmw.AuthRequired(opts.JWTSecret))
	} else {
		slog.Warn("JWT_SECRET is not set; /v1 routes are unauthenticated")
	}
	{
		v1.POST("/projections/participant", projections.Participant)
		v1.POST("/projections/cohorts", projections.Cohorts)
		v1.POST("/projections/platform", projections.Platform)
	}

	return r
}
