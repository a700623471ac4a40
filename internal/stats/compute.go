package stats

import (
	"fmt"

	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// Compute derives the full Stats record for a series sampled at interval.
// Only the price change can fail; every other field degrades to null.
func Compute(series models.Series, interval string) (models.Stats, error) {
	change, err := PriceChange(series)
	if err != nil {
		return models.Stats{}, fmt.Errorf("price change: %w", err)
	}

	high, low := RangeExtremes(series)

	return models.Stats{
		PriceEnd:   null.FloatFrom(change.End),
		ChangePct:  null.FloatFrom(change.Pct),
		ChangeAbs:  null.FloatFrom(change.Abs),
		RangeHigh:  high,
		RangeLow:   low,
		AvgVolume:  AverageVolume(series),
		Volatility: Volatility(series, interval),
	}, nil
}
