package core

import (
	"math"
	"time"

	"retailpulse.com/retailpulse/model"
)

const (
	OntimeHour      = 8
	OntimeLastMin   = 30
	SessionLifetime = 8 * time.Hour
)

// ClassifyLogin derives the login status from the wall-clock time of day.
// Callers are expected to pass a time already shifted into the store locale.
func ClassifyLogin(t time.Time) model.LoginStatus {
	hour, minute := t.Hour(), t.Minute()

	switch {
	case hour < OntimeHour:
		return model.LoginEarly
	case hour == OntimeHour && minute <= OntimeLastMin:
		return model.LoginOntime
	default:
		return model.LoginLate
	}
}

// DurationMinutes returns the shift length in whole minutes, rounded.
func DurationMinutes(login, logout time.Time) int {
	return int(math.Round(logout.Sub(login).Minutes()))
}
