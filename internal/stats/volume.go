package stats

import (
	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// AverageVolume returns the arithmetic mean of the volumes present in the
// series, or null when no bar has a volume.
func AverageVolume(series models.Series) null.Float {
	var sum float64
	var n int
	for _, b := range series {
		if !b.Volume.Valid {
			continue
		}
		sum += b.Volume.Float64
		n++
	}
	if n == 0 {
		return null.Float{}
	}
	return null.FloatFrom(sum / float64(n))
}
