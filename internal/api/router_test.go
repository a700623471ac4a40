package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/middleware"
	"github.com/guttosm/quotelens/internal/service"
)

// deadlineService reports whether the request context carried a deadline.
type deadlineService struct {
	hadDeadline bool
}

func (d *deadlineService) GetQuote(ctx context.Context, _ service.QuoteRequest) (*models.Quote, error) {
	_, d.hadDeadline = ctx.Deadline()
	return sampleQuote(), nil
}

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &deadlineService{}
	r := NewRouter(NewHandler(svc), NewHealthHandler(nil), RouterConfig{
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"*"},
	})

	for _, path := range []string{"/api/v1/symbol/AAPL", "/api/symbol/AAPL"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), path)
	}
	assert.True(t, svc.hadDeadline)

	for _, path := range []string{"/health", "/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&deadlineService{}), nil, RouterConfig{})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/symbol/AAPL", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `quotelens_http_requests_total{method="GET",route="/api/v1/symbol/:symbol",status="200"}`))
}

func TestNewRouter_NoTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &deadlineService{}
	r := NewRouter(NewHandler(svc), nil, RouterConfig{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbol/AAPL", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.hadDeadline)
}

func TestNewRouter_PanicIsRecovered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(panicService{}), nil, RouterConfig{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbol/AAPL", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type panicService struct{}

func (panicService) GetQuote(context.Context, service.QuoteRequest) (*models.Quote, error) {
	panic("boom")
}
