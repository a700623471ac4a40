package models

import (
	"time"

	"github.com/guregu/null/v6"
)

// Bar represents one sampled observation returned by the market data provider.
//
// Every price and the volume are optional: a field is invalid (null) when the
// provider omitted it for that sample.
//
// Fields:
//   - Time: sample timestamp, always UTC.
//   - Open, High, Low, Close: raw prices.
//   - AdjClose: split/dividend adjusted close; preferred over Close for returns.
//   - Volume: traded volume (non-negative).
type Bar struct {
	Time     time.Time
	Open     null.Float
	High     null.Float
	Low      null.Float
	Close    null.Float
	AdjClose null.Float
	Volume   null.Float
}

// PriceField selects which close column a calculation reads.
type PriceField int

const (
	FieldClose PriceField = iota
	FieldAdjClose
)

// Price returns the bar's value for the given close column.
func (b Bar) Price(f PriceField) null.Float {
	if f == FieldAdjClose {
		return b.AdjClose
	}
	return b.Close
}

// Series is an ordered (ascending Time) sequence of bars for one
// symbol/window/interval. It is built per request and never persisted.
type Series []Bar

// HasAdjClose reports whether at least one bar carries an adjusted close.
func (s Series) HasAdjClose() bool {
	for _, b := range s {
		if b.AdjClose.Valid {
			return true
		}
	}
	return false
}

// HasClose reports whether at least one bar carries a close or adjusted close.
func (s Series) HasClose() bool {
	for _, b := range s {
		if b.Close.Valid || b.AdjClose.Valid {
			return true
		}
	}
	return false
}

// PriceField returns the close column used for returns: the adjusted close
// when the series has one anywhere, otherwise the raw close.
func (s Series) PriceField() PriceField {
	if s.HasAdjClose() {
		return FieldAdjClose
	}
	return FieldClose
}
