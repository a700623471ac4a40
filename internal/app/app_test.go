package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotelens/config"
	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/provider"
)

func withProvider(t *testing.T, p Provider) {
	t.Helper()
	old := providerOpener
	providerOpener = func(config.Config) (Provider, error) { return p, nil }
	t.Cleanup(func() { providerOpener = old })
}

func withConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func TestInitializeApp_ProviderFailure(t *testing.T) {
	withConfig(t, config.Config{})

	r, cleanup, err := InitializeApp()
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Nil(t, cleanup)
}

func TestInitializeApp_BuildsYahoo(t *testing.T) {
	withConfig(t, config.Config{
		Server:   config.ServerConfig{Port: "0", RequestTimeout: time.Second},
		Provider: config.ProviderConfig{BaseURL: "http://127.0.0.1:1", UserAgent: "ua", Timeout: time.Second},
	})

	_, p, err := NewQuoteService(config.AppConfig)
	require.NoError(t, err)
	_, ok := p.(*provider.Yahoo)
	assert.True(t, ok)
}

func TestInitializeApp_HappyPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withConfig(t, config.Config{Server: config.ServerConfig{RequestTimeout: 5 * time.Second, AllowedOrigins: []string{"*"}}})
	static := &provider.Static{
		Series: models.Series{
			{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Close: null.FloatFrom(100), Volume: null.FloatFrom(10)},
			{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Close: null.FloatFrom(110), Volume: null.FloatFrom(30)},
		},
		Info: provider.Info{"longName": "Apple Inc."},
	}
	withProvider(t, static)

	router, cleanup, err := InitializeApp()
	require.NoError(t, err)
	require.NotNil(t, router)
	defer cleanup()

	for _, path := range []string{"/health", "/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbol/AAPL?asOf=2024-06-15&range=1Y&interval=1mo", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Stats   map[string]any `json:"stats"`
		Profile map[string]any `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 10.0, body.Stats["change_pct"], 1e-9)
	assert.InDelta(t, 20.0, body.Stats["avg_volume"], 1e-9)
	assert.Equal(t, "Apple Inc.", body.Profile["longName"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/symbol/AAPL?interval=5m", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	h, _ := static.Calls()
	assert.Equal(t, 1, h, "rejected request must not reach the provider")
}

func TestInitializeApp_ReadinessReflectsProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withConfig(t, config.Config{})
	withProvider(t, &provider.Static{PingErr: errors.New("yahoo unreachable")})

	router, _, err := InitializeApp()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/symbol/ZZZZ", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
