package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripplan/internal/domain"
	"tripplan/internal/itinerary"
)

// entryRequest is the wire form of an itinerary entry. Coordinates use the
// tolerant FlexFloat so a string "35.0" or junk from a hand-edited client
// is treated as a number or as absent, never as a request error.
type entryRequest struct {
	Date  string           `json:"date"`
	Time  string           `json:"time"`
	Type  domain.EntryType `json:"type"`
	Ref   string           `json:"ref"`
	Title string           `json:"title"`
	Lat   domain.FlexFloat `json:"lat"`
	Lon   domain.FlexFloat `json:"lon"`
}

func (er entryRequest) toEntry() domain.Entry {
	e := domain.Entry{
		Date:  er.Date,
		Time:  er.Time,
		Type:  er.Type,
		Ref:   er.Ref,
		Title: er.Title,
	}
	if er.Lat.Valid && er.Lon.Valid {
		lat, lon := er.Lat.Value, er.Lon.Value
		e.Lat, e.Lon = &lat, &lon
	}
	return e
}

// entryResponse pairs an entry with whether the focused day overlay should
// be rebuilt because the change touched it.
type entryResponse struct {
	Entry        domain.Entry `json:"entry"`
	RefreshFocus bool         `json:"refreshFocus"`
}

// ListDays handles GET /api/v1/itinerary: entries grouped by day, days in
// date order, entries in within-day order.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Itinerary.Days(r.Context()))
}

// AddEntry handles POST /api/v1/itinerary.
func (s *Server) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, refresh, err := s.deps.Itinerary.Add(r.Context(), req.toEntry())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryResponse{Entry: entry, RefreshFocus: refresh})
}

// UpdateEntry handles PUT /api/v1/itinerary/{id}. The entry's date is not
// editable; a date in the body is ignored.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, refresh, err := s.deps.Itinerary.Update(r.Context(), chi.URLParam(r, "id"), req.toEntry())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entryResponse{Entry: entry, RefreshFocus: refresh})
}

// DeleteEntry handles DELETE /api/v1/itinerary/{id}.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	refresh, err := s.deps.Itinerary.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		RefreshFocus bool `json:"refreshFocus"`
	}{RefreshFocus: refresh})
}

// ReorderDay handles POST /api/v1/itinerary/days/{date}/reorder. The body
// carries the entry ids for that day in their new visual order.
func (s *Server) ReorderDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	days, refresh, err := s.deps.Itinerary.Reorder(r.Context(), chi.URLParam(r, "date"), req.IDs)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Days         []itinerary.Day `json:"days"`
		RefreshFocus bool            `json:"refreshFocus"`
	}{Days: days, RefreshFocus: refresh})
}

// FocusDay handles POST /api/v1/itinerary/days/{date}/focus.
func (s *Server) FocusDay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Itinerary.FocusDay(r.Context(), chi.URLParam(r, "date")))
}

// FocusEntry handles POST /api/v1/focus/entry/{id}. A 204 means the entry
// exists but has no map reaction (a note, or a poi with nowhere to point).
func (s *Server) FocusEntry(w http.ResponseWriter, r *http.Request) {
	focus, ok, err := s.deps.Itinerary.FocusEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, focus)
}

// ClearFocus handles DELETE /api/v1/focus.
func (s *Server) ClearFocus(w http.ResponseWriter, r *http.Request) {
	s.deps.Itinerary.ClearFocus()
	w.WriteHeader(http.StatusNoContent)
}

// GetMap handles GET /api/v1/map: the full render model, with the active
// day focus re-applied when one is set.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Itinerary.Map(r.Context()))
}
