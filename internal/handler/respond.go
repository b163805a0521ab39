package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tripplan/internal/domain"
)

// errorDetail is the inner object of the error envelope.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope every non-2xx body uses:
// {"error":{"code":"...","message":"..."}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON marshals v and writes it with the given status. Marshal failures
// on handler-built values indicate a programming error, so the response falls
// back to a bare 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":{"code":"internal","message":"encoding failed"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// decodeJSON reads the request body into v. A false return means the error
// response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    "bad_request",
			Message: "invalid JSON body",
		}})
		return false
	}
	return true
}

// respondError maps a service error to the envelope. Sentinel wrapping done
// by the service layer ("pkg.Type.Method: validation error: name is
// required") carries the human-readable tail, which unwrapMessage extracts.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{
			Code:    "not_found",
			Message: unwrapMessage(err, domain.ErrNotFound),
		}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:    "validation_error",
			Message: unwrapMessage(err, domain.ErrValidation),
		}})
	case errors.Is(err, domain.ErrBadPayload):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    "bad_payload",
			Message: unwrapMessage(err, domain.ErrBadPayload),
		}})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{
			Code:    "internal",
			Message: "internal error",
		}})
	}
}

// badRequest writes a validation envelope for requests rejected before
// reaching the service layer (e.g. a non-numeric index segment).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
		Code:    "bad_request",
		Message: message,
	}})
}

// unwrapMessage extracts the human-readable part after the sentinel text.
// e.g. "service.BudgetService.Add: validation error: item is required"
// with ErrValidation → "item is required". Falls back to the full message.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
