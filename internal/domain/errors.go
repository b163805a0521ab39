package domain

import "errors"

// ErrNotFound is returned by service functions when the requested resource
// (city, entry, budget row, template, ...) does not exist in the document.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, city entry without a ref).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBadPayload is returned when an imported file or share token cannot be
// decoded into a document. The whole payload is rejected; nothing is applied.
// Handlers should map this to HTTP 400.
var ErrBadPayload = errors.New("bad payload")
