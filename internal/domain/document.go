package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is the single aggregate of all trip data. One instance exists per
// running process; it is persisted as one serialized blob and replaced
// wholesale on import or share-link load.
//
// Extra holds unknown top-level fields from older or foreign documents.
// They are carried through load, save, and export untouched, so a round trip
// through this program never strips data it does not understand.
type Document struct {
	Year      int             `json:"year"`
	Departure string          `json:"departure"`
	Cities    []City          `json:"cities"`
	Budget    []BudgetRow     `json:"budget"`
	Checklist []ChecklistItem `json:"checklist"`
	Notes     []Note          `json:"notes"`
	Itinerary []Entry         `json:"itinerary"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Default returns the built-in seed document: the eight-city Japan route,
// the starter checklist, and no itinerary.
func Default() Document {
	return Document{
		Year:      2026,
		Departure: "",
		Cities:    seedCities(),
		Budget:    []BudgetRow{},
		Checklist: []ChecklistItem{
			{Text: "Passport"},
			{Text: "eSIM (Ubigi)"},
			{Text: "IC card (Suica/PASMO)"},
			{Text: "Gym bands"},
		},
		Notes:     []Note{},
		Itinerary: []Entry{},
		Extra:     map[string]json.RawMessage{},
	}
}

func seedCities() []City {
	return []City{
		{Key: "tokyo", Name: "Tokyo", Lat: 35.6895, Lon: 139.6917, Plan: "Meet friends, Akihabara, Evangelion Store Tokyo-01", Transport: "Arrival"},
		{Key: "kawagoe", Name: "Kawagoe", Lat: 35.9251, Lon: 139.4850, Plan: "Little Edo streets, sweet potato snacks", Notes: "Day/half-day from Tokyo", Transport: "Tobu Tojo/Seibu", SideTrip: true},
		{Key: "nagoya", Name: "Nagoya", Lat: 35.1815, Lon: 136.9066, Plan: "Miso katsu / hitsumabushi", Notes: "Give Nagoya more time", Transport: "Shinkansen"},
		{Key: "kanazawa", Name: "Kanazawa", Lat: 36.5613, Lon: 136.6562, Plan: "Kenroku-en / Omicho Market", Transport: "Hokuriku Shinkansen (via Tsuruga)"},
		{Key: "kyoto", Name: "Kyoto", Lat: 35.0116, Lon: 135.7681, Plan: "Cozy vibes", Transport: "Limited Express / Shinkansen"},
		{Key: "nara", Name: "Nara", Lat: 34.6851, Lon: 135.8049, Plan: "Tōdai-ji", Notes: "Likely day trip from Kyoto/Osaka", Transport: "Kintetsu/JR", SideTrip: true},
		{Key: "hiroshima", Name: "Hiroshima", Lat: 34.3853, Lon: 132.4553, Plan: "Peace Memorial / okonomiyaki", Notes: "Friends also going here", Transport: "Shinkansen"},
		{Key: "osaka", Name: "Osaka", Lat: 34.6937, Lon: 135.5023, Plan: "Food tour, Dotonbori"},
	}
}

// knownFields lists the top-level document keys this version understands.
// Anything else lands in Extra.
var knownFields = map[string]bool{
	"year": true, "departure": true, "cities": true, "budget": true,
	"checklist": true, "notes": true, "itinerary": true,
}

// Decode parses raw JSON into a Document merged shallowly over the defaults:
// a top-level key present in the payload replaces the default value for that
// key, absent keys keep their defaults, unknown keys are preserved in Extra.
//
// A payload that is not a JSON object at all returns ErrBadPayload; callers
// on the storage path substitute Default() silently, callers on the import
// and share paths surface the error. A known field whose value does not
// decode keeps its default instead of failing the whole document; the legacy
// field shapes (bare-string checklist items, the old shared-note string,
// retired friend cities) are upgraded by Migrate.
func Decode(raw []byte) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Document{}, fmt.Errorf("domain.Decode: %w: not a JSON object", ErrBadPayload)
	}

	d := Default()
	for key, val := range fields {
		switch key {
		case "year":
			decodeField(val, &d.Year)
		case "departure":
			decodeField(val, &d.Departure)
		case "cities":
			decodeField(val, &d.Cities)
		case "budget":
			decodeField(val, &d.Budget)
		case "checklist":
			decodeField(val, &d.Checklist)
		case "notes":
			decodeField(val, &d.Notes)
		case "itinerary":
			decodeField(val, &d.Itinerary)
		default:
			d.Extra[key] = val
		}
	}

	d.Migrate()
	return d, nil
}

// decodeField unmarshals into dst, restoring the prior value when the stored
// shape does not fit. A wrong-typed field degrades to its default rather
// than corrupting the document.
func decodeField[T any](raw json.RawMessage, dst *T) {
	prev := *dst
	if err := json.Unmarshal(raw, dst); err != nil {
		*dst = prev
	}
}

// Migrate upgrades legacy shapes in place and restores required structure:
//
//   - retired "friend" cities are dropped;
//   - an empty or missing city list is reseeded from the defaults;
//   - a legacy top-level "shared" string becomes a note titled "Shared"
//     when the notes collection is empty;
//   - nil sub-collections become empty ones so they serialize as [].
//
// Migrate is idempotent; loading and saving repeatedly changes nothing.
func (d *Document) Migrate() {
	kept := d.Cities[:0]
	for _, c := range d.Cities {
		if !c.Friend {
			kept = append(kept, c)
		}
	}
	d.Cities = kept
	if len(d.Cities) == 0 {
		d.Cities = seedCities()
	}

	if d.Extra == nil {
		d.Extra = map[string]json.RawMessage{}
	}
	if raw, ok := d.Extra["shared"]; ok {
		if len(d.Notes) == 0 {
			var body string
			if err := json.Unmarshal(raw, &body); err == nil && body != "" {
				d.Notes = []Note{{Title: "Shared", Body: body, TS: time.Now().UnixMilli()}}
			}
		}
		delete(d.Extra, "shared")
	}

	if d.Budget == nil {
		d.Budget = []BudgetRow{}
	}
	if d.Checklist == nil {
		d.Checklist = []ChecklistItem{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Itinerary == nil {
		d.Itinerary = []Entry{}
	}
}

// MarshalJSON flattens the document and its preserved unknown fields into a
// single object. Known fields always win over a stale copy in Extra.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(knownFields)+len(d.Extra))
	for key, val := range d.Extra {
		if !knownFields[key] {
			out[key] = val
		}
	}
	out["year"] = d.Year
	out["departure"] = d.Departure
	out["cities"] = d.Cities
	out["budget"] = d.Budget
	out["checklist"] = d.Checklist
	out["notes"] = d.Notes
	out["itinerary"] = d.Itinerary
	return json.Marshal(out)
}
