package dto

import (
	"github.com/guregu/null/v6"

	"github.com/guttosm/quotelens/internal/domain/models"
)

// CandleTimeLayout is the key format of QuoteResponse.Candles.
const CandleTimeLayout = "2006-01-02T15:04:05Z"

// CandleResponse is one bar of the candles map. Missing values serialize as null.
//
// swagger:model CandleResponse
type CandleResponse struct {
	Open   null.Float `json:"Open" swaggertype:"number"`
	High   null.Float `json:"High" swaggertype:"number"`
	Low    null.Float `json:"Low" swaggertype:"number"`
	Close  null.Float `json:"Close" swaggertype:"number"`
	Volume null.Float `json:"Volume" swaggertype:"number"`
}

// QuoteResponse represents the JSON structure returned by the
// GET /api/v1/symbol/{symbol} endpoint.
//
// swagger:model QuoteResponse
type QuoteResponse struct {
	Stats   models.Stats              `json:"stats"`
	Candles map[string]CandleResponse `json:"candles"`
	Profile models.Profile            `json:"profile"`
}

// NewQuoteResponse assembles the payload for a quote: the statistics, the raw
// candles keyed by UTC timestamp and the company profile.
func NewQuoteResponse(q *models.Quote) QuoteResponse {
	candles := make(map[string]CandleResponse, len(q.Series))
	for _, b := range q.Series {
		candles[b.Time.UTC().Format(CandleTimeLayout)] = CandleResponse{
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return QuoteResponse{
		Stats:   q.Stats,
		Candles: candles,
		Profile: q.Profile,
	}
}
