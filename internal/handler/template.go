package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListTemplates handles GET /api/v1/templates: the names of the built-in
// starter plans.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.deps.Templates.List()
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Templates []string `json:"templates"`
	}{Templates: names})
}

// ApplyTemplate handles POST /api/v1/templates/{name}/apply: replace the
// stored document with the named starter plan.
func (s *Server) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	doc, err := s.deps.Templates.Apply(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
