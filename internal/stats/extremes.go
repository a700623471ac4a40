package stats

import (
	"math"

	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// RangeExtremes returns the highest high and lowest low of the series.
//
// Bars missing either High or Low are ignored. When no bar carries both, the
// preferred close column (adjusted close if present anywhere, else close) is
// used instead. If neither path has data both results are null.
func RangeExtremes(series models.Series) (high, low null.Float) {
	hi, lo := math.Inf(-1), math.Inf(1)
	found := false
	for _, b := range series {
		if !b.High.Valid || !b.Low.Valid {
			continue
		}
		hi = math.Max(hi, b.High.Float64)
		lo = math.Min(lo, b.Low.Float64)
		found = true
	}
	if found {
		return null.FloatFrom(hi), null.FloatFrom(lo)
	}

	field := series.PriceField()
	for _, b := range series {
		p := b.Price(field)
		if !p.Valid {
			continue
		}
		hi = math.Max(hi, p.Float64)
		lo = math.Min(lo, p.Float64)
		found = true
	}
	if found {
		return null.FloatFrom(hi), null.FloatFrom(lo)
	}

	return null.Float{}, null.Float{}
}
