package handler

import "net/http"

// noteRequest is the editable part of a note; the timestamp is always set
// server-side.
type noteRequest struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
	Body  string `json:"body"`
}

// ListNotes handles GET /api/v1/notes. Newest note first.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Notes.List(r.Context()))
}

// AddNote handles POST /api/v1/notes.
func (s *Server) AddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	note, err := s.deps.Notes.Add(r.Context(), req.Title, req.Tag, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT /api/v1/notes/{index}. Saving refreshes the note's
// timestamp.
func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	note, err := s.deps.Notes.Update(r.Context(), i, req.Title, req.Tag, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /api/v1/notes/{index}.
func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	if err := s.deps.Notes.Delete(r.Context(), i); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
