package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
	"github.com/guttosm/quotelens/internal/logger"
	"github.com/guttosm/quotelens/internal/metrics"
)

const (
	opHistory = "history"
	opProfile = "profile"

	maxBodyBytes   = 8 << 20
	errBodySnippet = 256
)

// YahooConfig holds the Yahoo Finance adapter settings.
//
// Fields:
//   - BaseURL: API host serving chart, crumb and quoteSummary endpoints.
//   - CookieURL: page that hands out the session cookie required for the crumb.
//   - UserAgent: sent on every request; Yahoo rejects empty agents.
//   - Timeout: per-attempt HTTP timeout.
//   - MaxRetries: retries after the first attempt for transient failures.
type YahooConfig struct {
	BaseURL    string
	CookieURL  string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
}

// StatusError is a non-2xx answer from Yahoo.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("yahoo: status %d: %s", e.Code, e.Body)
}

// Yahoo implements MarketDataProvider on top of the public Yahoo Finance
// chart and quoteSummary APIs.
type Yahoo struct {
	cfg        YahooConfig
	client     *http.Client
	newBackOff func() backoff.BackOff

	mu    sync.Mutex
	crumb string
}

var _ MarketDataProvider = (*Yahoo)(nil)

// NewYahoo creates a Yahoo adapter with its own cookie jar.
func NewYahoo(cfg YahooConfig) *Yahoo {
	jar, _ := cookiejar.New(nil) // never fails without options
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Yahoo{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			b.MaxElapsedTime = 0 // bounded by retries and ctx
			return b
		},
	}
}

// chartResponse mirrors /v8/finance/chart. Pointers keep JSON nulls apart from zeros.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile map[string]any `json:"assetProfile"`
			Price        map[string]any `json:"price"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

// History fetches bars from the chart endpoint for [start, end).
//
// Bars whose prices are all null (holidays, halted sessions) are skipped and
// the result is sorted by time. Unknown symbols and windows with no data map
// to ErrNoData.
func (y *Yahoo) History(ctx context.Context, symbol string, start, end time.Time, interval string) (series models.Series, err error) {
	defer y.observe(opHistory, time.Now(), &err)

	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", interval)
	q.Set("includeAdjustedClose", "true")
	q.Set("events", "div,splits")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	body, err := y.get(ctx, u)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Code == http.StatusNotFound || se.Code == http.StatusUnprocessableEntity) {
			return nil, fmt.Errorf("%w: %s", ErrNoData, se.Body)
		}
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo chart decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoData, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, ErrNoData
	}

	return decodeBars(chart), nil
}

func decodeBars(chart chartResponse) models.Series {
	res := chart.Chart.Result[0]
	var open, high, low, cls, vol, adj []*float64
	if len(res.Indicators.Quote) > 0 {
		q := res.Indicators.Quote[0]
		open, high, low, cls, vol = q.Open, q.High, q.Low, q.Close, q.Volume
	}
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	bars := make(models.Series, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		b := models.Bar{
			Time:     time.Unix(ts, 0).UTC(),
			Open:     at(open, i),
			High:     at(high, i),
			Low:      at(low, i),
			Close:    at(cls, i),
			AdjClose: at(adj, i),
			Volume:   at(vol, i),
		}
		if !b.Open.Valid && !b.High.Valid && !b.Low.Valid && !b.Close.Valid && !b.AdjClose.Valid {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, b)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars
}

func at(xs []*float64, i int) null.Float {
	if i >= len(xs) {
		return null.Float{}
	}
	return null.FloatFromPtr(xs[i])
}

// Profile fetches the assetProfile and price modules of quoteSummary and
// flattens them into a single Info map.
func (y *Yahoo) Profile(ctx context.Context, symbol string) (info Info, err error) {
	defer y.observe(opProfile, time.Now(), &err)

	info, err = y.profile(ctx, symbol)
	var se *StatusError
	if errors.As(err, &se) && (se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden) {
		// stale crumb: drop it and try once more with a fresh session
		y.resetCrumb()
		info, err = y.profile(ctx, symbol)
	}
	return info, err
}

func (y *Yahoo) profile(ctx context.Context, symbol string) (Info, error) {
	crumb, err := y.crumbFor(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("modules", "assetProfile,price")
	q.Set("crumb", crumb)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	body, err := y.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}

	var summary summaryResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&summary); err != nil {
		return nil, fmt.Errorf("yahoo quoteSummary decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %s", symbol, summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, ErrNoData)
	}

	res := summary.QuoteSummary.Result[0]
	info := Info{}
	for k, v := range res.AssetProfile {
		info[k] = v
	}
	for _, k := range []string{"longName", "shortName", "exchange", "currency"} {
		if v, ok := res.Price[k]; ok {
			if _, exists := info[k]; !exists {
				info[k] = v
			}
		}
	}
	return info, nil
}

// crumbFor returns the cached crumb or negotiates a new cookie/crumb pair.
func (y *Yahoo) crumbFor(ctx context.Context) (string, error) {
	y.mu.Lock()
	defer y.mu.Unlock()
	if y.crumb != "" {
		return y.crumb, nil
	}

	if y.cfg.CookieURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.cfg.CookieURL, nil)
		if err != nil {
			return "", fmt.Errorf("yahoo cookie request: %w", err)
		}
		req.Header.Set("User-Agent", y.cfg.UserAgent)
		resp, err := y.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("yahoo cookie: %w", err)
		}
		// the cookie is set regardless of the (often 404) status
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
	}

	body, err := y.get(ctx, y.cfg.BaseURL+"/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("yahoo crumb: %w", err)
	}
	crumb := strings.TrimSpace(string(body))
	if crumb == "" {
		return "", errors.New("yahoo crumb: empty response")
	}
	y.crumb = crumb
	return crumb, nil
}

func (y *Yahoo) resetCrumb() {
	y.mu.Lock()
	y.crumb = ""
	y.mu.Unlock()
}

// Ping checks that the provider host answers HTTP at all.
func (y *Yahoo) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, y.cfg.BaseURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)
	resp, err := y.client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// get performs a GET with retries on network errors, 429 and 5xx.
// Other non-2xx statuses fail immediately with a *StatusError.
func (y *Yahoo) get(ctx context.Context, u string) ([]byte, error) {
	b := backoff.WithContext(backoff.WithMaxRetries(y.newBackOff(), uint64(y.cfg.MaxRetries)), ctx)

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		req.Header.Set("User-Agent", y.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := y.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return nil, &StatusError{Code: resp.StatusCode, Body: snippet(body)}
		default:
			return nil, backoff.Permanent(&StatusError{Code: resp.StatusCode, Body: snippet(body)})
		}
	}

	notify := func(err error, wait time.Duration) {
		logger.L().Warn().Err(err).Dur("retry_in", wait).Str("provider", "yahoo").Msg("provider request retry")
	}

	return backoff.RetryNotifyWithData(operation, b, notify)
}

func (y *Yahoo) observe(op string, start time.Time, errp *error) {
	metrics.ProviderDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := metrics.OutcomeOK
	switch {
	case *errp == nil:
	case errors.Is(*errp, ErrNoData):
		outcome = metrics.OutcomeNoData
	default:
		outcome = metrics.OutcomeFailure
	}
	metrics.ProviderRequests.WithLabelValues(op, outcome).Inc()
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > errBodySnippet {
		s = s[:errBodySnippet]
	}
	return s
}
