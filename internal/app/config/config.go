// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"treasury_backend/internal/platform/redis"
)

const (
	defaultHTTPAddr           = ":8080"
	defaultCacheTTL           = 10 * time.Minute
	defaultRateLimitPerMinute = 60
)

// Config holds configuration for cmd/server.
type Config struct {
	HTTPAddr           string        // Listen address, HTTP_ADDR
	LogLevel           slog.Level    // LOG_LEVEL: debug, info, warn or error
	CacheTTL           time.Duration // PROJECTION_CACHE_TTL, e.g. "15m"
	JWTSecret          string        // JWT_SECRET; empty leaves /v1 open
	RateLimitPerMinute int           // RATE_LIMIT_PER_MINUTE; 0 disables limiting
	CORSAllowedOrigins []string      // CORS_ALLOWED_ORIGINS, comma separated
	Redis              redis.Config
}

// LoadConfig loads server configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPAddr:           getenv("HTTP_ADDR", defaultHTTPAddr),
		CacheTTL:           defaultCacheTTL,
		JWTSecret:          os.Getenv("JWT_SECRET"),
		RateLimitPerMinute: defaultRateLimitPerMinute,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Redis:              redis.LoadConfig(),
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}
	if v := os.Getenv("PROJECTION_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PROJECTION_CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = ttl
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q", v)
		}
		cfg.RateLimitPerMinute = n
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
