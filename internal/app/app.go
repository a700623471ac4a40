package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotelens/config"
	"github.com/guttosm/quotelens/internal/api"
	"github.com/guttosm/quotelens/internal/provider"
	"github.com/guttosm/quotelens/internal/service"
)

// Provider is a market data provider that can also report reachability.
type Provider interface {
	provider.MarketDataProvider
	Ping(ctx context.Context) error
}

// providerOpener builds the market data provider; tests override it.
var providerOpener = func(cfg config.Config) (Provider, error) {
	p := cfg.Provider
	if p.BaseURL == "" {
		return nil, fmt.Errorf("provider base URL is empty")
	}
	return provider.NewYahoo(provider.YahooConfig{
		BaseURL:    p.BaseURL,
		CookieURL:  p.CookieURL,
		UserAgent:  p.UserAgent,
		Timeout:    p.Timeout,
		MaxRetries: p.MaxRetries,
	}), nil
}

// NewQuoteService wires the quote service on top of the configured provider.
// The command line uses it directly; InitializeApp wraps it in HTTP.
func NewQuoteService(cfg config.Config) (service.QuoteService, Provider, error) {
	p, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize provider: %w", err)
	}
	return service.NewQuoteService(p), p, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Yahoo Finance provider from config.AppConfig.
//   - Initializes the quote service and HTTP handler.
//   - Configures the Gin router (middlewares, timeout, CORS, API routes).
//   - Registers health and readiness checks; readiness pings the provider.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, p, err := NewQuoteService(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(svc)
	health := api.NewHealthHandler(map[string]api.Check{
		"provider": p.Ping,
	})

	router := api.NewRouter(handler, health, api.RouterConfig{
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Nothing to release: the provider holds only an HTTP client.
	cleanup := func() {}

	return router, cleanup, nil
}
