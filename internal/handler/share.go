package handler

import "net/http"

// CreateShareLink handles POST /api/v1/share: snapshot the current document
// into a copyable link.
func (s *Server) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	link, err := s.deps.Share.Create(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// ApplyShareLink handles POST /api/v1/share/apply: decode a received token
// and replace the stored document with its snapshot. A token that does not
// decode is rejected whole; nothing is applied.
func (s *Server) ApplyShareLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.deps.Share.Apply(r.Context(), req.Token)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
