package domain

import "fmt"

// EntryType discriminates the three itinerary entry variants.
type EntryType string

const (
	// EntryCity references a city in the registry; location comes from there.
	EntryCity EntryType = "city"
	// EntryPOI is a point of interest: its own coordinates, a referenced
	// city's coordinates, or no location at all.
	EntryPOI EntryType = "poi"
	// EntryNote is free text pinned to a day; it has no location semantics.
	EntryNote EntryType = "note"
)

// Entry is one itinerary record. Entries sharing a Date form a Day; there is
// no persistent Day record, a day exists only as a query-time grouping.
//
// Which fields are meaningful depends on Type; Normalize is the single place
// that enforces the variant rules, so an entry that has passed through
// Normalize carries only the fields valid for its type.
type Entry struct {
	ID string `json:"id"`

	// Date is a calendar day in "YYYY-MM-DD" form. Grouping compares the
	// literal string; no calendar normalization is applied.
	Date string `json:"date"`

	// Time is a zero-padded 24-hour "HH:MM" clock string, or empty for an
	// untimed entry. Within a day entries order by plain string comparison
	// of this field, so an empty time sorts before any populated one.
	Time string `json:"time,omitempty"`

	Type EntryType `json:"type"`

	// Ref is a city key. Required for city entries; optional for poi entries
	// (the poi then inherits that city's coordinates when it has no pair of
	// its own); never set on note entries.
	Ref string `json:"ref,omitempty"`

	// Title labels poi and note entries. City entries take their label from
	// the referenced city.
	Title string `json:"title,omitempty"`

	// Lat/Lon form an explicit coordinate pair for poi entries. The pair is
	// only meaningful when both halves are present.
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// HasCoords reports whether the entry carries a complete coordinate pair.
func (e Entry) HasCoords() bool {
	return e.Lat != nil && e.Lon != nil
}

// Normalize enforces the variant rules for the entry's type:
//
//   - city: keeps only Ref; Title and the coordinate pair are cleared.
//   - poi:  keeps Ref, Title (defaulting to "POI"), and the coordinate pair
//     only when both halves are present. A half pair is dropped silently,
//     never rejected.
//   - note: keeps only Title (defaulting to "Note").
//
// Unknown types are left untouched; Validate rejects them.
func (e *Entry) Normalize() {
	switch e.Type {
	case EntryCity:
		e.Title = ""
		e.Lat, e.Lon = nil, nil
	case EntryPOI:
		if e.Title == "" {
			e.Title = "POI"
		}
		if !e.HasCoords() {
			e.Lat, e.Lon = nil, nil
		}
	case EntryNote:
		if e.Title == "" {
			e.Title = "Note"
		}
		e.Ref = ""
		e.Lat, e.Lon = nil, nil
	}
}

// Validate checks the add-form rules. Missing date, a city entry without a
// ref, or a poi entry without a title are validation errors; everything else
// is normalized away rather than rejected.
func (e Entry) Validate() error {
	if e.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	switch e.Type {
	case EntryCity:
		if e.Ref == "" {
			return fmt.Errorf("%w: city entry requires a city ref", ErrValidation)
		}
	case EntryPOI:
		if e.Title == "" {
			return fmt.Errorf("%w: poi entry requires a title", ErrValidation)
		}
	case EntryNote:
		// Title defaults in Normalize.
	default:
		return fmt.Errorf("%w: unknown entry type %q", ErrValidation, e.Type)
	}
	return nil
}
