package utils

import "time"

// LagosTZ is the deployment locale for all stores. time.LoadLocation can fail
// on stripped containers, so fall back to a fixed WAT offset.
var LagosTZ = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Lagos"); err == nil {
		return loc
	}
	return time.FixedZone("WAT", 1*60*60)
}()

// SameDay reports whether both times fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
