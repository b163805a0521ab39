package handler

import "net/http"

// ListChecklist handles GET /api/v1/checklist.
func (s *Server) ListChecklist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Checklist.List(r.Context()))
}

// AddChecklistItem handles POST /api/v1/checklist.
func (s *Server) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := s.deps.Checklist.Add(r.Context(), req.Text)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// SetChecklistDone handles PUT /api/v1/checklist/{index}: toggle or set the
// done flag. Text edits are not supported; delete and re-add instead.
func (s *Server) SetChecklistDone(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	var req struct {
		Done bool `json:"done"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := s.deps.Checklist.SetDone(r.Context(), i, req.Done)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteChecklistItem handles DELETE /api/v1/checklist/{index}.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	if err := s.deps.Checklist.Delete(r.Context(), i); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearChecklist handles DELETE /api/v1/checklist: remove every item, done
// or not.
func (s *Server) ClearChecklist(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Checklist.Clear(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
