package service

import (
	"strings"
	"time"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// Defaults applied when a request leaves range or interval empty.
const (
	DefaultRange    = "1Y"
	DefaultInterval = "1mo"
)

const day = 24 * time.Hour

// rangeOffsets is how far back each range code reaches from the as-of instant.
// The extra day(s) cover weekends and the provider's exclusive bounds.
var rangeOffsets = map[string]time.Duration{
	"1D": 2 * day,
	"1W": 8 * day,
	"1M": 32 * day,
	"3M": 95 * day,
	"1Y": 366 * day,
}

// maxRangeStart is the start used for the MAX range code.
var maxRangeStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

var validIntervals = map[string]struct{}{
	"1h":  {},
	"1d":  {},
	"1mo": {},
	"3mo": {},
}

// NormalizeRange trims and upper-cases a range code.
func NormalizeRange(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidRange reports whether code (case-insensitive) is one of
// 1D, 1W, 1M, 3M, 1Y, MAX.
func ValidRange(code string) bool {
	c := NormalizeRange(code)
	if c == "MAX" {
		return true
	}
	_, ok := rangeOffsets[c]
	return ok
}

// ValidInterval reports whether interval is one of 1h, 1d, 1mo, 3mo.
// Intervals are case-sensitive ("1M" is not "1mo").
func ValidInterval(interval string) bool {
	_, ok := validIntervals[interval]
	return ok
}

// ResolveWindow translates a range code into the [start, asOf+1d) window.
//
// Unknown codes fall back to the 1Y offset instead of failing; callers are
// expected to have validated the code with ValidRange beforehand.
// TODO: reject unknown codes here once every caller validates through ValidRange.
func ResolveWindow(rangeCode string, asOf time.Time) models.RangeWindow {
	asOf = asOf.UTC()
	end := asOf.Add(day)

	code := NormalizeRange(rangeCode)
	if code == "MAX" {
		return models.RangeWindow{Start: maxRangeStart, EndExclusive: end}
	}

	offset, ok := rangeOffsets[code]
	if !ok {
		offset = rangeOffsets[DefaultRange]
	}
	return models.RangeWindow{Start: asOf.Add(-offset), EndExclusive: end}
}

// asOfLayouts are tried in order; the zone-less ones are interpreted as UTC.
var asOfLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAsOf parses an as-of timestamp. Values without a zone are UTC; values
// with one are converted to UTC.
func ParseAsOf(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range asOfLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, invalidParam("invalid asOf %q, expected RFC3339 or YYYY-MM-DD", s)
}
