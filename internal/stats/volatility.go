package stats

import (
	"math"

	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// periodsPerYear maps a sampling interval to the number of samples in a
// trading year. Hourly assumes 6.5 trading hours per session.
var periodsPerYear = map[string]float64{
	"1h":  252 * 6.5,
	"1d":  252,
	"1mo": 12,
	"3mo": 4,
}

const (
	defaultMinObservations       = 10
	defaultMinObservationsHourly = 20
)

// AnnualizationFactor returns the periods-per-year factor for interval.
func AnnualizationFactor(interval string) (float64, bool) {
	f, ok := periodsPerYear[interval]
	return f, ok
}

type volatilityConfig struct {
	annualize       bool
	minObservations *int // nil means interval default
}

// VolatilityOption customizes Volatility.
type VolatilityOption func(*volatilityConfig)

// WithoutAnnualization returns the raw per-period standard deviation of
// log-returns. The minimum-observation threshold is not enforced.
func WithoutAnnualization() VolatilityOption {
	return func(c *volatilityConfig) { c.annualize = false }
}

// WithMinObservations overrides the minimum number of log-returns required
// for an annualized figure. Zero disables the threshold; at least 2 returns
// are still needed for a standard deviation.
func WithMinObservations(n int) VolatilityOption {
	return func(c *volatilityConfig) { c.minObservations = &n }
}

// Volatility returns the sample standard deviation of log-returns of the
// preferred close column, annualized by default.
//
// Rules:
//   - Missing, non-finite and non-positive prices are dropped; returns are
//     taken between consecutive remaining prices.
//   - Fewer than 2 usable prices or 2 returns yields null.
//   - Annualized results need at least 20 returns for "1h" and 10 otherwise
//     (see WithMinObservations), and an interval listed in the
//     annualization table; otherwise null.
func Volatility(series models.Series, interval string, opts ...VolatilityOption) null.Float {
	cfg := volatilityConfig{annualize: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	prices := usablePrices(series)
	if len(prices) < 2 {
		return null.Float{}
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, math.Log(prices[i])-math.Log(prices[i-1]))
	}

	minObs := defaultMinObservations
	if interval == "1h" {
		minObs = defaultMinObservationsHourly
	}
	if cfg.minObservations != nil {
		minObs = *cfg.minObservations
	}
	if cfg.annualize && len(returns) < minObs {
		return null.Float{}
	}

	sd, ok := sampleStdDev(returns)
	if !ok {
		return null.Float{}
	}

	if !cfg.annualize {
		return null.FloatFrom(sd)
	}
	factor, ok := AnnualizationFactor(interval)
	if !ok {
		return null.Float{}
	}
	return null.FloatFrom(sd * math.Sqrt(factor))
}

func usablePrices(series models.Series) []float64 {
	field := series.PriceField()
	out := make([]float64, 0, len(series))
	for _, b := range series {
		p := b.Price(field)
		if !p.Valid || math.IsNaN(p.Float64) || math.IsInf(p.Float64, 0) || p.Float64 <= 0 {
			continue
		}
		out = append(out, p.Float64)
	}
	return out
}

// sampleStdDev uses Bessel's correction (n-1).
func sampleStdDev(xs []float64) (float64, bool) {
	n := len(xs)
	if n < 2 {
		return 0, false
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(n)

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1)), true
}
