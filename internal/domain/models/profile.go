package models

import "github.com/guregu/null/v6"

// Profile is the descriptive company metadata returned alongside the stats.
// All fields are copied from provider metadata; none are derived.
//
// swagger:model Profile
type Profile struct {
	LongName  null.String `json:"longName" swaggertype:"string" example:"Apple Inc."`
	ShortName null.String `json:"shortName" swaggertype:"string" example:"Apple Inc."`
	Website   null.String `json:"website" swaggertype:"string"`
	Phone     null.String `json:"phone" swaggertype:"string"`
	Address   null.String `json:"address" swaggertype:"string"`
	City      null.String `json:"city" swaggertype:"string"`
	State     null.String `json:"state" swaggertype:"string"`
	Zip       null.String `json:"zip" swaggertype:"string"`
	Country   null.String `json:"country" swaggertype:"string"`
	Industry  null.String `json:"industry" swaggertype:"string"`
	Sector    null.String `json:"sector" swaggertype:"string"`
	Exchange  null.String `json:"exchange" swaggertype:"string" example:"NMS"`
	Currency  null.String `json:"currency" swaggertype:"string" example:"USD"`
	Employees null.Int    `json:"employees" swaggertype:"integer"`
	Summary   null.String `json:"summary" swaggertype:"string"`
	VIP       null.String `json:"vip" swaggertype:"string"`
}
