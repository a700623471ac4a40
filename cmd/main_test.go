package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotelens/internal/domain/dto"
	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/provider"
	"github.com/guttosm/quotelens/internal/service"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	require.NotNil(t, srv)

	time.Sleep(50 * time.Millisecond)

	shutdownCtx, c := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer c()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func staticService() service.QuoteService {
	return service.NewQuoteService(&provider.Static{
		Series: models.Series{
			{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Close: null.FloatFrom(100)},
			{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Close: null.FloatFrom(120)},
		},
	})
}

func TestRunQuote(t *testing.T) {
	var out bytes.Buffer
	err := runQuote(context.Background(), staticService(), quoteFlags{
		symbol:    "aapl",
		rangeCode: "1Y",
		interval:  "1mo",
		asOf:      "2024-06-15",
	}, &out)
	require.NoError(t, err)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.InDelta(t, 20.0, resp.Stats.ChangePct.Float64, 1e-9)
	assert.InDelta(t, 120.0, resp.Stats.PriceEnd.Float64, 1e-9)
	assert.Len(t, resp.Candles, 2)
	assert.Contains(t, resp.Candles, "2024-02-01T00:00:00Z")
}

func TestRunQuote_Errors(t *testing.T) {
	cases := []struct {
		name string
		f    quoteFlags
	}{
		{"no symbol", quoteFlags{}},
		{"blank symbol", quoteFlags{symbol: "  "}},
		{"bad asof", quoteFlags{symbol: "AAPL", asOf: "tomorrow"}},
		{"unsupported interval", quoteFlags{symbol: "AAPL", interval: "5m"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runQuote(context.Background(), staticService(), tc.f, &out)
			assert.Error(t, err)
			assert.Zero(t, out.Len())
		})
	}
}
