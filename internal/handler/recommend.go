package handler

import (
	"net/http"

	"tripplan/internal/domain"
)

// recommendedResponse is the feed rows after filtering plus the distinct
// city names available as filter values.
type recommendedResponse struct {
	Items  []domain.Recommendation `json:"items"`
	Cities []string                `json:"cities"`
}

// ListRecommended handles GET /api/v1/recommended?city=&category=. Both
// filters are optional and match case-insensitively.
func (s *Server) ListRecommended(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, cities := s.deps.Recommend.List(q.Get("city"), q.Get("category"))
	writeJSON(w, http.StatusOK, recommendedResponse{Items: items, Cities: cities})
}

// AddRecommended handles POST /api/v1/recommended/add: turn one feed item
// into a poi itinerary entry on the given date.
func (s *Server) AddRecommended(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, refresh, err := s.deps.Recommend.Add(r.Context(), req.Name, req.Date, req.Time)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryResponse{Entry: entry, RefreshFocus: refresh})
}

// AddAllRecommended handles POST /api/v1/recommended/add-all: add every item
// matching the filters as poi entries on one date, in feed order.
func (s *Server) AddAllRecommended(w http.ResponseWriter, r *http.Request) {
	var req struct {
		City     string `json:"city"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Time     string `json:"time"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	entries, refresh, err := s.deps.Recommend.AddAll(r.Context(), req.City, req.Category, req.Date, req.Time)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Entries      []domain.Entry `json:"entries"`
		RefreshFocus bool           `json:"refreshFocus"`
	}{Entries: entries, RefreshFocus: refresh})
}
