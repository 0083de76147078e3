package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury_backend/internal/feature/projection/adapters"
	projectionhandler "treasury_backend/internal/feature/projection/transport/handler"
	"treasury_backend/internal/feature/projection/usecase"
	platformhandler "treasury_backend/internal/platform/http/handler"
	jwtmw "treasury_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const platformBody = `{
	"growth":{"start_participants":10,"end_participants":40,"shape":"linear"},
	"market":{"initial_price":60000,"start_growth_pct":40,"asymptote_growth_pct":10,"settle_years":6,"horizon_years":1},
	"participant":{"monthly_contribution":200,"yield_pct":4,"yield_fee_pct":20,"exchange_fee_pct":1},
	"platform_yield_pct":5
}`

func newTestRouter(opts Options) *gin.Engine {
	uc := usecase.NewProjectionUsecase(adapters.NewEngineProjector())
	return NewRouter(opts, platformhandler.NewHealthHandler(nil), projectionhandler.NewProjectionHandler(uc))
}

func TestNewRouter_Health(t *testing.T) {
	r := newTestRouter(Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","cache":"disabled"}`, w.Body.String())
}

func TestNewRouter_PlatformProjection(t *testing.T) {
	r := newTestRouter(Options{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/projections/platform", strings.NewReader(platformBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"final_participants":40`)
	assert.NotEmpty(t, w.Header().Get(projectionhandler.HeaderRunID))
}

func TestNewRouter_RequiresTokenWhenSecretSet(t *testing.T) {
	const secret = "router-secret"
	r := newTestRouter(Options{JWTSecret: secret})

	token, err := jwtmw.NewGenerator(secret, time.Hour).GenerateToken("test-client", "")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/projections/platform", strings.NewReader(platformBody))
			req.Header.Set("Content-Type", "application/json")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	r := newTestRouter(Options{RateLimitPerMinute: 1})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/projections/platform", strings.NewReader(platformBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRouter_CORS(t *testing.T) {
	r := newTestRouter(Options{CORSAllowedOrigins: []string{"https://app.example.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/projections/platform", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
