package models

import "time"

// RangeWindow is the concrete [Start, EndExclusive) interval requested from
// the provider. EndExclusive is always one day after the as-of instant.
type RangeWindow struct {
	Start        time.Time
	EndExclusive time.Time
}
