package handler

import (
	"fmt"
	"io"
	"net/http"
)

// maxImportSize caps how much of an uploaded document we read. Trip files
// are a few kilobytes; anything larger is not a plan.
const maxImportSize = 4 << 20

// GetDocument handles GET /api/v1/document.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Documents.Get(r.Context()))
}

// ExportDocument handles GET /api/v1/export. The body is the pretty-printed
// document with download headers so a browser saves it as a file.
func (s *Server) ExportDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := s.deps.Documents.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-plan.json"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(raw)))
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// ImportDocument handles POST /api/v1/import. The body is a raw exported
// document; it replaces the stored one after migration. A payload that does
// not decode is rejected whole.
func (s *Server) ImportDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		badRequest(w, "could not read body")
		return
	}
	doc, err := s.deps.Documents.Import(r.Context(), raw)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// SetDeparture handles PUT /api/v1/document/departure. The date is stored
// verbatim; the countdown reports an unparseable value as invalid rather
// than rejecting it here.
func (s *Server) SetDeparture(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Departure string `json:"departure"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.deps.Documents.SetDeparture(r.Context(), req.Departure)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// GetCountdown handles GET /api/v1/countdown.
func (s *Server) GetCountdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Documents.Countdown(r.Context(), s.now()))
}
