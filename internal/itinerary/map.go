package itinerary

import (
	"fmt"

	"tripplan/internal/domain"
)

// Marker is one city dot on the map.
type Marker struct {
	Key   string `json:"key"`
	Label string `json:"label"` // "1. Tokyo", position in route order
	LatLon
	Color  string `json:"color"`
	Radius int    `json:"radius"`

	// Dim is set on markers outside the active day focus.
	Dim bool `json:"dim"`
}

// MapRender is the full map model: every city marker, the main route line,
// the viewport fit, and, when a day focus is active, the re-applied focus
// plan. Re-rendering after any edit goes through here, which is what keeps
// an active day focus surviving city edits.
type MapRender struct {
	Markers []Marker  `json:"markers"`
	Route   []LatLon  `json:"route"`
	Fit     *Bounds   `json:"fit,omitempty"`
	Padding int       `json:"padding"`
	Max     Bounds    `json:"maxBounds"`
	Focus   *FocusPlan `json:"focus,omitempty"`
}

// RenderMap builds the map model from the registry and view state. selected
// enlarges that city's marker; a non-empty activeDate re-applies the day
// focus on top of the base render, dimming markers the focus does not
// highlight.
func RenderMap(cities []domain.City, entries []domain.Entry, selected, activeDate string) MapRender {
	r := MapRender{
		Markers: make([]Marker, 0, len(cities)),
		Route:   []LatLon{},
		Padding: FitPadding,
		Max:     MapBounds,
	}

	var focus *FocusPlan
	highlighted := map[string]bool{}
	if activeDate != "" {
		p := FocusDay(activeDate, entries, cities)
		focus = &p
		for _, key := range p.Highlight {
			highlighted[key] = true
		}
	}

	pts := make([]LatLon, 0, len(cities))
	for i, c := range cities {
		p := LatLon{Lat: c.Lat, Lon: c.Lon}
		pts = append(pts, p)

		m := Marker{
			Key:    c.Key,
			Label:  fmt.Sprintf("%d. %s", i+1, c.Name),
			LatLon: p,
			Color:  ColorMain,
			Radius: RadiusDefault,
		}
		if c.SideTrip {
			m.Color = ColorSideTrip
		}
		if c.Key == selected {
			m.Radius = RadiusSelected
		}
		if focus != nil {
			if highlighted[c.Key] {
				m.Radius = RadiusHighlight
			} else {
				m.Dim = true
			}
		}
		r.Markers = append(r.Markers, m)
	}

	if len(pts) >= 2 {
		r.Route = pts
	}
	r.Fit = boundsOf(pts)
	r.Focus = focus
	return r
}
