package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/quotelens/internal/domain/models"
)

func TestVolatility_ConstantSeriesIsZero(t *testing.T) {
	got := Volatility(closes(50, 50, 50, 50), "1d", WithoutAnnualization())
	assert.True(t, got.Valid)
	assert.Equal(t, 0.0, got.Float64)
}

func TestVolatility_MinObservations(t *testing.T) {
	s := geometric(9, 100, 0.02, 0.01) // 9 returns

	assert.False(t, Volatility(s, "1d").Valid, "annualized needs 10 returns for 1d")
	assert.True(t, Volatility(s, "1d", WithoutAnnualization()).Valid)
	assert.True(t, Volatility(s, "1d", WithMinObservations(5)).Valid)

	s = geometric(10, 100, 0.02, 0.01)
	assert.True(t, Volatility(s, "1d").Valid)

	hourly := geometric(19, 100, 0.02, 0.01)
	assert.False(t, Volatility(hourly, "1h").Valid, "annualized needs 20 returns for 1h")
	hourly = geometric(20, 100, 0.02, 0.01)
	assert.True(t, Volatility(hourly, "1h").Valid)
}

func TestVolatility_ZeroMinObservationsDisablesThreshold(t *testing.T) {
	s := closes(1, 2, 1, 2) // 3 returns

	assert.False(t, Volatility(s, "1d").Valid, "default threshold applies")

	got := Volatility(s, "1d", WithMinObservations(0))
	assert.True(t, got.Valid)
	assert.InDelta(t, math.Sqrt(4.0/3.0)*math.Ln2*math.Sqrt(252), got.Float64, 1e-9)

	assert.False(t, Volatility(closes(1, 2), "1d", WithMinObservations(0)).Valid,
		"a single return has no sample deviation")
}

func TestVolatility_UnknownIntervalCannotAnnualize(t *testing.T) {
	s := geometric(60, 100, 0.02, 0.01)
	assert.False(t, Volatility(s, "5m").Valid)
	assert.False(t, Volatility(s, "5m", WithMinObservations(2)).Valid)
	assert.True(t, Volatility(s, "5m", WithoutAnnualization()).Valid)
}

func TestVolatility_KnownValue(t *testing.T) {
	// log-returns ln(2), ln(0.5), ln(2): mean ln(2)/3, sample variance 4/3*ln(2)^2
	s := closes(1, 2, 1, 2)
	want := math.Sqrt(4.0/3.0) * math.Ln2

	got := Volatility(s, "1mo", WithoutAnnualization())
	assert.True(t, got.Valid)
	assert.InDelta(t, want, got.Float64, 1e-12)

	got = Volatility(s, "1mo", WithMinObservations(3))
	assert.True(t, got.Valid)
	assert.InDelta(t, want*math.Sqrt(12), got.Float64, 1e-12)
}

func TestVolatility_DropsUnusablePrices(t *testing.T) {
	clean := closes(1, 2, 1, 2)
	dirty := models.Series{
		{Close: f(1)},
		{Close: nf},
		{Close: f(0)},
		{Close: f(2)},
		{Close: f(-3)},
		{Close: f(math.NaN())},
		{Close: f(1)},
		{Close: f(2)},
	}
	want := Volatility(clean, "1d", WithoutAnnualization())
	got := Volatility(dirty, "1d", WithoutAnnualization())
	assert.True(t, got.Valid)
	assert.InDelta(t, want.Float64, got.Float64, 1e-12)
}

func TestVolatility_TooFewPrices(t *testing.T) {
	assert.False(t, Volatility(nil, "1d", WithoutAnnualization()).Valid)
	assert.False(t, Volatility(closes(10), "1d", WithoutAnnualization()).Valid)
	// a single return has no sample deviation
	assert.False(t, Volatility(closes(10, 11), "1d", WithoutAnnualization()).Valid)
}

func TestVolatility_PrefersAdjustedClose(t *testing.T) {
	s := models.Series{
		{Close: f(10), AdjClose: f(1)},
		{Close: f(10), AdjClose: f(2)},
		{Close: f(10), AdjClose: f(1)},
		{Close: f(10), AdjClose: f(2)},
	}
	got := Volatility(s, "1d", WithoutAnnualization())
	assert.True(t, got.Valid)
	assert.Greater(t, got.Float64, 0.0)
}

func TestAnnualizationFactor(t *testing.T) {
	cases := map[string]float64{"1h": 1638, "1d": 252, "1mo": 12, "3mo": 4}
	for iv, want := range cases {
		got, ok := AnnualizationFactor(iv)
		assert.True(t, ok, iv)
		assert.Equal(t, want, got, iv)
	}
	_, ok := AnnualizationFactor("1wk")
	assert.False(t, ok)
}
