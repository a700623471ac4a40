package models

import "github.com/guregu/null/v6"

// Stats holds the summary statistics derived from a Series.
//
// Each field is independently optional; a null value means the series did not
// carry enough data to determine it.
//
// swagger:model Stats
type Stats struct {
	PriceEnd   null.Float `json:"price_end" swaggertype:"number" example:"189.95"`
	ChangePct  null.Float `json:"change_pct" swaggertype:"number" example:"12.4"`
	ChangeAbs  null.Float `json:"change_abs" swaggertype:"number" example:"21.01"`
	RangeHigh  null.Float `json:"range_high" swaggertype:"number" example:"199.62"`
	RangeLow   null.Float `json:"range_low" swaggertype:"number" example:"164.08"`
	AvgVolume  null.Float `json:"avg_volume" swaggertype:"number" example:"1.2e9"`
	Volatility null.Float `json:"volatility" swaggertype:"number" example:"0.23"`
}
