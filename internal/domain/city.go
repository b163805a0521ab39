// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies and is imported by every other
// internal package (store, itinerary, service, handler).
//
// JSON field names match the persisted document shape, which is also the
// export-file and share-link shape, so a document written by one surface can
// always be read by the others.
package domain

import "strings"

// City is one destination on the route. Identity is Key; the display and
// route order is the position within Document.Cities.
type City struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Plan      string  `json:"plan"`
	Notes     string  `json:"notes"`
	Dates     string  `json:"dates"`
	Stay      string  `json:"stay"`
	Transport string  `json:"transport"`

	// SideTrip marks a short detour rather than a primary stop.
	// Display-only: side trips still participate in the route line.
	SideTrip bool `json:"sideTrip"`

	// Friend is a retired flag from old saved documents. Cities carrying it
	// are dropped during migration and the flag is never written back.
	Friend bool `json:"friend,omitempty"`
}

// CityKey derives a registry key from a display name: lowercased with
// whitespace collapsed to hyphens. Callers must still ensure uniqueness
// against the existing registry (see service.CityService.Add).
func CityKey(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}

// FindCity returns the city with the given key, or false when no city in the
// slice carries it. A linear scan is fine at route sizes.
func FindCity(cities []City, key string) (City, bool) {
	for _, c := range cities {
		if c.Key == key {
			return c, true
		}
	}
	return City{}, false
}
