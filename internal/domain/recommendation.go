package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Recommendation is one record from the static recommendations feed.
// City is a display name, not a registry key; matching against the registry
// is case-insensitive by name.
type Recommendation struct {
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Lat         FlexFloat `json:"lat"`
	Lon         FlexFloat `json:"lon"`
}

// HasCoords reports whether both coordinates decoded to usable values.
func (r Recommendation) HasCoords() bool {
	return r.Lat.Valid && r.Lon.Valid
}

// FlexFloat decodes a JSON number or a numeric string. Feed files in the
// wild carry coordinates both ways; anything unparseable is simply invalid,
// never a decode error for the whole feed.
type FlexFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements the tolerant decoding described on the type.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	f.Valid = false
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// MarshalJSON writes the numeric value, or null when invalid.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
