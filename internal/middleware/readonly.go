package middleware

import (
	"encoding/json"
	"net/http"
)

// NewReadOnlyGuard returns a middleware implementing public view mode:
// when enabled, every request that could mutate state (anything other than
// GET, HEAD, or OPTIONS) is rejected with 403 and a standard error body.
// When disabled the middleware is a pass-through.
func NewReadOnlyGuard(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				//nolint:errcheck
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{
						"code":    "read_only",
						"message": "this planner is in read-only view mode",
					},
				})
			}
		})
	}
}
