package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371

// DefaultGeofenceRadiusMeters is deliberately generous; field devices report
// coarse positions and the rollout decision was to not lock anyone out.
const DefaultGeofenceRadiusMeters = 30000

// ParseCoordinates splits a "lat,lng" pair. Malformed input is an error,
// never a NaN pair.
func ParseCoordinates(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q: want \"lat,lng\"", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}
	return lat, lng, nil
}

// Distance returns the great-circle distance between two points in meters,
// via the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * 1000
}

// WithinRadius reports whether the reported position is within radiusMeters
// of the store's "lat,lng" reference coordinate.
func WithinRadius(storeCoordinates string, lat, lng, radiusMeters float64) (bool, error) {
	storeLat, storeLng, err := ParseCoordinates(storeCoordinates)
	if err != nil {
		return false, err
	}
	return Distance(storeLat, storeLng, lat, lng) <= radiusMeters, nil
}
