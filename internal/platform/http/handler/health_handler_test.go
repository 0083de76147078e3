package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubCache bool

func (s stubCache) Available(context.Context) bool { return bool(s) }

func setupRouter(cache CacheChecker) *gin.Engine {
	h := NewHealthHandler(cache)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	r.POST("/healthz", h.Health)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cache         CacheChecker
		expectedCache string
	}{
		{"no cache configured", nil, "disabled"},
		{"cache reachable", stubCache(true), "up"},
		{"cache unreachable", stubCache(false), "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			setupRouter(tt.cache).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			if w.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
			}

			var response map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response["status"] != "ok" {
				t.Errorf("expected status 'ok', got %q", response["status"])
			}
			if response["cache"] != tt.expectedCache {
				t.Errorf("expected cache %q, got %q", tt.expectedCache, response["cache"])
			}
		})
	}
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	setupRouter(stubCache(true)).ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// HEAD should have no body
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body for HEAD request, got %d bytes", w.Body.Len())
	}
}

func TestHealth_ResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method         string
		expectedStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodHead, http.StatusOK},
		{http.MethodOptions, http.StatusNoContent},
		{http.MethodPost, http.StatusOK},
	}

	router := setupRouter(nil)

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			// All methods should have Cache-Control header
			if w.Header().Get("Cache-Control") != "no-store" {
				t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
			}
		})
	}
}
