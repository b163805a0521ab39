package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tripplan/internal/domain"
)

// indexParam parses the {index} URL segment. Budget rows, checklist items,
// and notes are addressed by position, matching how the document stores
// them. A false return means the error response has been written.
func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || i < 0 {
		badRequest(w, "index must be a non-negative integer")
		return 0, false
	}
	return i, true
}

// budgetResponse is the list shape: rows plus the computed totals.
type budgetResponse struct {
	Rows   []domain.BudgetRow  `json:"rows"`
	Totals domain.BudgetTotals `json:"totals"`
}

// ListBudget handles GET /api/v1/budget.
func (s *Server) ListBudget(w http.ResponseWriter, r *http.Request) {
	rows, totals := s.deps.Budget.List(r.Context())
	writeJSON(w, http.StatusOK, budgetResponse{Rows: rows, Totals: totals})
}

// AddBudgetRow handles POST /api/v1/budget.
func (s *Server) AddBudgetRow(w http.ResponseWriter, r *http.Request) {
	var row domain.BudgetRow
	if !decodeJSON(w, r, &row) {
		return
	}
	created, err := s.deps.Budget.Add(r.Context(), row)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBudgetRow handles PUT /api/v1/budget/{index}.
func (s *Server) UpdateBudgetRow(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	var row domain.BudgetRow
	if !decodeJSON(w, r, &row) {
		return
	}
	updated, err := s.deps.Budget.Update(r.Context(), i, row)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBudgetRow handles DELETE /api/v1/budget/{index}.
func (s *Server) DeleteBudgetRow(w http.ResponseWriter, r *http.Request) {
	i, ok := indexParam(w, r)
	if !ok {
		return
	}
	if err := s.deps.Budget.Delete(r.Context(), i); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
