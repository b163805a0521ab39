package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripplan/internal/domain"
)

// ListCities handles GET /api/v1/cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Cities.List(r.Context()))
}

// GetCity handles GET /api/v1/cities/{key}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	city, err := s.deps.Cities.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

// AddCity handles POST /api/v1/cities. The key is derived from the name
// server-side; a client-supplied key is ignored.
func (s *Server) AddCity(w http.ResponseWriter, r *http.Request) {
	var city domain.City
	if !decodeJSON(w, r, &city) {
		return
	}
	created, err := s.deps.Cities.Add(r.Context(), city)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCity handles PUT /api/v1/cities/{key}. The key is stable across
// renames; a blank name keeps the existing one.
func (s *Server) UpdateCity(w http.ResponseWriter, r *http.Request) {
	var city domain.City
	if !decodeJSON(w, r, &city) {
		return
	}
	updated, err := s.deps.Cities.Update(r.Context(), chi.URLParam(r, "key"), city)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCity handles DELETE /api/v1/cities/{key}. Itinerary entries that
// referenced the city stay put and simply stop resolving on the map.
func (s *Server) DeleteCity(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Cities.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderCities handles POST /api/v1/cities/reorder: move one city so it
// sits before another in the registry order.
func (s *Server) ReorderCities(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	cities, err := s.deps.Cities.Reorder(r.Context(), req.From, req.To)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// FocusCity handles POST /api/v1/focus/city/{key}: select the city and
// return the camera move for it.
func (s *Server) FocusCity(w http.ResponseWriter, r *http.Request) {
	focus, err := s.deps.Cities.Focus(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, focus)
}
