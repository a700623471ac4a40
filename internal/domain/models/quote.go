package models

// Quote is the result of one symbol query: the normalized series, the
// statistics derived from it and the best-effort company profile.
type Quote struct {
	Symbol   string
	Interval string
	Window   RangeWindow
	Series   Series
	Stats    Stats
	Profile  Profile
}
