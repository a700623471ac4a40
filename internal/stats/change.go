package stats

import (
	"errors"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// ErrNoPrice is returned by PriceChange when the series is empty or its first
// or last bar lacks a value in the selected close column.
var ErrNoPrice = errors.New("series has no first/last close price")

// Change is the move between the first and last close of a series.
type Change struct {
	End float64 // last close
	Pct float64 // (last/first - 1) * 100
	Abs float64 // last - first
}

// PriceChange compares the first and last close of the series, preferring the
// adjusted close column when the series has one.
func PriceChange(series models.Series) (Change, error) {
	if len(series) == 0 {
		return Change{}, ErrNoPrice
	}
	field := series.PriceField()
	first := series[0].Price(field)
	last := series[len(series)-1].Price(field)
	if !first.Valid || !last.Valid {
		return Change{}, ErrNoPrice
	}
	return Change{
		End: last.Float64,
		Pct: (last.Float64/first.Float64 - 1) * 100,
		Abs: last.Float64 - first.Float64,
	}, nil
}
