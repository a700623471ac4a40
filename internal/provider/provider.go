// Package provider defines the market data collaborator used by the quote
// service and its Yahoo Finance implementation.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// ErrNoData is returned when the provider has no bars for the request
// (unknown symbol, empty window, interval not available for the window).
var ErrNoData = errors.New("provider returned no data")

// Info is the provider's free-form company metadata, keyed by the provider's
// field names (longName, address1, fullTimeEmployees, companyOfficers, ...).
type Info map[string]any

// MarketDataProvider fetches raw market data for a symbol.
type MarketDataProvider interface {
	// History returns bars in [start, end) sampled at interval. An empty
	// series or ErrNoData both mean "nothing found".
	History(ctx context.Context, symbol string, start, end time.Time, interval string) (models.Series, error)
	// Profile returns company metadata. Callers treat it as best-effort.
	Profile(ctx context.Context, symbol string) (Info, error)
}
