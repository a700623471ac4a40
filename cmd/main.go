package main

//
//  @title           quotelens API
//  @version         1.0
//  @description     Ticker statistics (price change, range, volume, volatility) over Yahoo Finance history.
//  @termsOfService  https://github.com/guttosm/quotelens
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/quotelens
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        symbol
//  @tag.description Ticker statistics
//
//  @tag.name        health
//  @tag.description Liveness and readiness checks

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/quotelens/config"
	_ "github.com/guttosm/quotelens/docs" // swagger docs
	"github.com/guttosm/quotelens/internal/app"
	"github.com/guttosm/quotelens/internal/domain/dto"
	"github.com/guttosm/quotelens/internal/logger"
	"github.com/guttosm/quotelens/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// quoteFlags are the command line inputs of quote mode.
type quoteFlags struct {
	symbol    string
	rangeCode string
	interval  string
	asOf      string
}

// runQuote fetches one quote and writes it to out as a JSON QuoteResponse.
func runQuote(ctx context.Context, svc service.QuoteService, f quoteFlags, out io.Writer) error {
	if strings.TrimSpace(f.symbol) == "" {
		return errors.New("no symbol: use --symbol")
	}

	var asOf time.Time
	if f.asOf != "" {
		t, err := service.ParseAsOf(f.asOf)
		if err != nil {
			return err
		}
		asOf = t
	}

	q, err := svc.GetQuote(ctx, service.QuoteRequest{
		Symbol:   f.symbol,
		AsOf:     asOf,
		Range:    f.rangeCode,
		Interval: f.interval,
	})
	if err != nil {
		return fmt.Errorf("quote %s: %w", f.symbol, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewQuoteResponse(q))
}

// main is the entry point of the quotelens application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API (default).
//   - quote: Prints the statistics payload for --symbol as JSON.
//
// Flags:
//   - --port: Port for the API server. Defaults to SERVER_PORT.
//   - --symbol, --range, --interval, --asof: quote mode inputs.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or quote")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	var qf quoteFlags
	flag.StringVar(&qf.symbol, "symbol", "", "Ticker for quote mode (e.g. AAPL)")
	flag.StringVar(&qf.rangeCode, "range", service.DefaultRange, "Range: 1D, 1W, 1M, 3M, 1Y or MAX")
	flag.StringVar(&qf.interval, "interval", service.DefaultInterval, "Interval: 1h, 1d, 1mo or 3mo")
	flag.StringVar(&qf.asOf, "asof", "", "Reference instant (RFC3339 or YYYY-MM-DD); default now")
	flag.Parse()

	switch *mode {
	case "quote":
		svc, _, err := app.NewQuoteService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		if err := runQuote(ctx, svc, qf, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("quote failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(context.Background(), server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
