// Package stats derives summary statistics from a price series.
//
// All functions are pure and tolerate empty series and missing fields: when
// the input does not determine a value they return an invalid null.Float
// instead of an error. PriceChange is the exception and reports ErrNoPrice.
package stats
