package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/logger"
	"github.com/guttosm/quotelens/internal/provider"
	"github.com/guttosm/quotelens/internal/stats"
)

// QuoteRequest describes one symbol query.
//
// Fields:
//   - Symbol: ticker, e.g. "AAPL" (trimmed and upper-cased).
//   - AsOf: reference instant; zero means now (UTC).
//   - Range: range code (1D, 1W, 1M, 3M, 1Y, MAX); empty means 1Y.
//   - Interval: sampling interval (1h, 1d, 1mo, 3mo); empty means 1mo.
type QuoteRequest struct {
	Symbol   string
	AsOf     time.Time
	Range    string
	Interval string
}

// QuoteService defines the business logic behind the symbol endpoint.
// It decouples HTTP handlers (and the CLI) from the market data provider.
type QuoteService interface {
	GetQuote(ctx context.Context, req QuoteRequest) (*models.Quote, error)
}

type quoteService struct {
	provider provider.MarketDataProvider
	now      func() time.Time
}

func NewQuoteService(p provider.MarketDataProvider) QuoteService {
	return &quoteService{provider: p, now: time.Now}
}

// GetQuote validates the request, fetches history, derives the statistics,
// then looks up the profile and returns the assembled quote. The profile is
// only requested once the statistics succeeded.
//
// Errors:
//   - ErrInvalidParameter: bad interval/range/symbol; the provider is not called.
//   - ErrNotFound: no usable price data.
//   - anything else: provider or computation failure.
//
// A failing profile lookup never fails the request; the profile is left empty.
func (s *quoteService) GetQuote(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return nil, invalidParam("symbol is required")
	}
	interval := req.Interval
	if interval == "" {
		interval = DefaultInterval
	}
	if !ValidInterval(interval) {
		return nil, invalidParam("Unsupported interval: %s", interval)
	}
	rng := req.Range
	if strings.TrimSpace(rng) == "" {
		rng = DefaultRange
	}
	if !ValidRange(rng) {
		return nil, invalidParam("Unsupported range: %s", rng)
	}
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = s.now()
	}

	window := ResolveWindow(rng, asOf)
	log := logger.Component("quote")

	series, err := FetchAndNormalize(ctx, s.provider, symbol, window, interval)
	if err != nil {
		return nil, err
	}

	st, err := stats.Compute(series, interval)
	if err != nil {
		return nil, fmt.Errorf("compute stats for %s: %w", symbol, err)
	}

	info, err := s.provider.Profile(ctx, symbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("profile lookup failed, continuing without profile")
		info = nil
	}

	log.Debug().
		Str("symbol", symbol).
		Str("range", NormalizeRange(rng)).
		Str("interval", interval).
		Int("bars", len(series)).
		Msg("quote built")

	return &models.Quote{
		Symbol:   symbol,
		Interval: interval,
		Window:   window,
		Series:   series,
		Stats:    st,
		Profile:  profileFromInfo(info),
	}, nil
}

// FetchAndNormalize loads bars for the window and normalizes them: UTC
// timestamps, ascending order, one bar per timestamp (last one wins).
// No bars, or no bar with a close price, is ErrNotFound.
func FetchAndNormalize(ctx context.Context, p provider.MarketDataProvider, symbol string, window models.RangeWindow, interval string) (models.Series, error) {
	raw, err := p.History(ctx, symbol, window.Start, window.EndExclusive, interval)
	if errors.Is(err, provider.ErrNoData) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}

	series := normalize(raw)
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if !series.HasClose() {
		return nil, fmt.Errorf("%w: %s has no close prices", ErrNotFound, symbol)
	}
	return series, nil
}

func normalize(raw models.Series) models.Series {
	out := make(models.Series, len(raw))
	for i, b := range raw {
		b.Time = b.Time.UTC()
		out[i] = b
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	dedup := out[:0]
	for _, b := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Time.Equal(b.Time) {
			dedup[n-1] = b
			continue
		}
		dedup = append(dedup, b)
	}
	return dedup
}
