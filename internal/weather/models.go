// Package weather provides normalized weather observations with caching.
package weather

import (
	"errors"
	"time"
)

// ErrUnavailable signals that no observation could be produced for a
// location and date. It is the only error callers see for upstream
// failures; transport detail is logged, never propagated.
var ErrUnavailable = errors.New("weather observation unavailable")

// Observation is a normalized weather snapshot for one location and time.
// It has no identity and is never mutated once produced.
type Observation struct {
	// Temperature in °C.
	Temperature float64

	// Humidity percentage (0-100). Nil when the provider omits it; the
	// scoring engine substitutes 50.
	Humidity *int

	// WindSpeed in m/s.
	WindSpeed float64

	// Precipitation in mm (accumulated or derived rate), never negative.
	Precipitation float64

	// Description is the provider's free-text condition summary.
	Description string

	// Icon is an opaque provider icon code, passed through untouched.
	Icon string

	FetchedAt time.Time
}

// ForecastEntry is an Observation positioned at a forecast bucket time.
type ForecastEntry struct {
	Time        time.Time
	Observation Observation
}
