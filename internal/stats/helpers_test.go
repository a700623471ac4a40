package stats

import (
	"time"

	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

var t0 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// f builds a valid null.Float; nf is the null value.
func f(v float64) null.Float { return null.FloatFrom(v) }

var nf = null.Float{}

// closes builds a daily series carrying only Close values.
func closes(vals ...float64) models.Series {
	s := make(models.Series, len(vals))
	for i, v := range vals {
		s[i] = models.Bar{Time: t0.AddDate(0, 0, i), Close: f(v)}
	}
	return s
}

// geometric builds n+1 closes alternating between +up and -down moves.
func geometric(n int, start, up, down float64) models.Series {
	vals := []float64{start}
	p := start
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			p *= 1 + up
		} else {
			p *= 1 - down
		}
		vals = append(vals, p)
	}
	return closes(vals...)
}
