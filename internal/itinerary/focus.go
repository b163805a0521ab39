package itinerary

import "tripplan/internal/domain"

// Map constants carried over from the product build.
const (
	// PulseMillis is how long the transient pulse indicator stays visible.
	PulseMillis = 900
	// FitPadding is the pixel padding applied when fitting bounds.
	FitPadding = 40
	// CityMinZoom is the minimum zoom when centering on a city.
	CityMinZoom = 7
	// POIMinZoom is the minimum zoom when centering on a located poi.
	POIMinZoom = 12

	ColorMain     = "#3b82f6"
	ColorSideTrip = "#ef4444"
	ColorPOI      = "#22c55e"
	ColorDayRoute = "#f97316"
	ColorOutline  = "#111827"
)

// Marker radii: resting, selected city, day-focus highlight.
const (
	RadiusDefault   = 7
	RadiusSelected  = 10
	RadiusHighlight = 11
)

// MapBounds bounds the viewport to Japan.
var MapBounds = Bounds{MinLat: 24.0, MinLon: 122.0, MaxLat: 46.5, MaxLon: 146.0}

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a lat/lon bounding box.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Extend grows the box to include p.
func (b *Bounds) Extend(p LatLon) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
}

// boundsOf returns the box enclosing pts, or nil for an empty slice.
func boundsOf(pts []LatLon) *Bounds {
	if len(pts) == 0 {
		return nil
	}
	b := Bounds{MinLat: pts[0].Lat, MaxLat: pts[0].Lat, MinLon: pts[0].Lon, MaxLon: pts[0].Lon}
	for _, p := range pts[1:] {
		b.Extend(p)
	}
	return &b
}

// Point is one plotted location in a day focus: which entry produced it and
// where it lands.
type Point struct {
	EntryID string           `json:"entryId"`
	Type    domain.EntryType `json:"type"`
	Title   string           `json:"title"`
	LatLon
}

// FocusPlan is the overlay state for one focused day. It is a pure
// projection of the itinerary and city registry; applying it draws the day's
// standalone poi markers, the connecting route line (two or more points
// only), fits the viewport to Bounds when present, dims every city marker
// and re-highlights the ones in Highlight.
type FocusPlan struct {
	Date string `json:"date"`

	// Points are the day's locatable entries in day order.
	Points []Point `json:"points"`

	// Route is the connecting line across Points; empty unless there are at
	// least two of them.
	Route []LatLon `json:"route"`

	// Bounds fits the viewport to the day's points; nil when none located.
	Bounds *Bounds `json:"bounds,omitempty"`

	// Padding is the pixel padding for the bounds fit.
	Padding int `json:"padding"`

	// Highlight lists the city keys referenced by the day's city entries,
	// each at most once, in first-appearance order. All other city markers
	// are dimmed while the focus is active.
	Highlight []string `json:"highlight"`
}

// FocusDay computes the overlay plan for one day. Entries resolve in sorted
// day order: notes are skipped; city entries resolve through the registry,
// with dangling refs skipped rather than failing; poi entries use their own
// pair when complete, fall back to the referenced city, and are skipped when
// neither locates them.
func FocusDay(date string, list []domain.Entry, cities []domain.City) FocusPlan {
	plan := FocusPlan{
		Date:      date,
		Points:    []Point{},
		Route:     []LatLon{},
		Padding:   FitPadding,
		Highlight: []string{},
	}

	day := GroupByDate(list)[date]
	seen := map[string]bool{}
	for _, e := range day {
		switch e.Type {
		case domain.EntryCity:
			c, ok := domain.FindCity(cities, e.Ref)
			if !ok {
				continue
			}
			plan.Points = append(plan.Points, Point{
				EntryID: e.ID, Type: e.Type, Title: c.Name,
				LatLon: LatLon{Lat: c.Lat, Lon: c.Lon},
			})
			if !seen[c.Key] {
				seen[c.Key] = true
				plan.Highlight = append(plan.Highlight, c.Key)
			}
		case domain.EntryPOI:
			coord, ok := locatePOI(e, cities)
			if !ok {
				continue
			}
			plan.Points = append(plan.Points, Point{
				EntryID: e.ID, Type: e.Type, Title: e.Title, LatLon: coord,
			})
		}
	}

	if len(plan.Points) >= 2 {
		plan.Route = make([]LatLon, len(plan.Points))
		for i, p := range plan.Points {
			plan.Route[i] = p.LatLon
		}
	}
	pts := make([]LatLon, len(plan.Points))
	for i, p := range plan.Points {
		pts[i] = p.LatLon
	}
	plan.Bounds = boundsOf(pts)
	return plan
}

// locatePOI resolves a poi entry's coordinates: the explicit pair when both
// halves are present, else the referenced city, else nothing.
func locatePOI(e domain.Entry, cities []domain.City) (LatLon, bool) {
	if e.HasCoords() {
		return LatLon{Lat: *e.Lat, Lon: *e.Lon}, true
	}
	if e.Ref != "" {
		if c, ok := domain.FindCity(cities, e.Ref); ok {
			return LatLon{Lat: c.Lat, Lon: c.Lon}, true
		}
	}
	return LatLon{}, false
}

// CityFocus is the map reaction to selecting a single location: center the
// view, enlarge the matching marker, and show a transient pulse indicator
// at the projected position for PulseMillis. The client keeps the pulse
// tracking the projected position through pans and zooms until it expires.
type CityFocus struct {
	Center      LatLon `json:"center"`
	MinZoom     int    `json:"minZoom"`
	PulseMillis int    `json:"pulseMillis"`

	// Highlight is the city key whose marker is enlarged; empty for a
	// standalone poi location.
	Highlight string `json:"highlight,omitempty"`
}

// FocusCity centers on one city with a pulse.
func FocusCity(c domain.City) CityFocus {
	return CityFocus{
		Center:      LatLon{Lat: c.Lat, Lon: c.Lon},
		MinZoom:     CityMinZoom,
		PulseMillis: PulseMillis,
		Highlight:   c.Key,
	}
}

// FocusEntry is the single-entry special case: a city entry focuses its
// city; a located poi centers tighter on its own pair; an unlocated poi
// falls back to its referenced city. Note entries and unlocatable pois have
// no map reaction; the second return is false.
func FocusEntry(e domain.Entry, cities []domain.City) (CityFocus, bool) {
	switch e.Type {
	case domain.EntryCity:
		c, ok := domain.FindCity(cities, e.Ref)
		if !ok {
			return CityFocus{}, false
		}
		return FocusCity(c), true
	case domain.EntryPOI:
		if e.HasCoords() {
			return CityFocus{
				Center:      LatLon{Lat: *e.Lat, Lon: *e.Lon},
				MinZoom:     POIMinZoom,
				PulseMillis: PulseMillis,
			}, true
		}
		if e.Ref != "" {
			if c, ok := domain.FindCity(cities, e.Ref); ok {
				return FocusCity(c), true
			}
		}
	}
	return CityFocus{}, false
}
