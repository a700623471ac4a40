package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotelens/internal/domain/models"
)

func TestCompute(t *testing.T) {
	s := models.Series{
		{Time: t0, Open: f(99), High: f(102), Low: f(98), Close: f(100), Volume: f(1000)},
		{Time: t0.AddDate(0, 1, 0), Open: f(100), High: f(108), Low: f(97), Close: f(105), Volume: nf},
		{Time: t0.AddDate(0, 2, 0), Open: f(105), High: f(111), Low: f(104), Close: f(110), Volume: f(3000)},
	}

	st, err := Compute(s, "1mo")
	require.NoError(t, err)
	assert.Equal(t, 110.0, st.PriceEnd.Float64)
	assert.InDelta(t, 10.0, st.ChangePct.Float64, 1e-9)
	assert.InDelta(t, 10.0, st.ChangeAbs.Float64, 1e-9)
	assert.Equal(t, 111.0, st.RangeHigh.Float64)
	assert.Equal(t, 97.0, st.RangeLow.Float64)
	assert.Equal(t, 2000.0, st.AvgVolume.Float64)
	assert.False(t, st.Volatility.Valid, "two returns are below the monthly threshold")
}

func TestCompute_PropagatesPriceChangeError(t *testing.T) {
	_, err := Compute(models.Series{{Volume: f(1)}}, "1d")
	assert.ErrorIs(t, err, ErrNoPrice)
}
