// Package httputil writes the JSON response envelope shared by every
// handler: payloads via WriteJSON, failures via WriteError using the
// {error, error_description} shape. Plain 500s never include a description;
// whatever the error says is for the logs, not the caller.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Request bodies larger than this are rejected outright.
const maxBodyBytes = 1 << 20

// APIError pairs an HTTP status with a stable machine-readable code. The
// description is caller-facing text; leave it empty for errors whose cause
// the caller has no business seeing.
type APIError struct {
	Status      int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// NewError constructs an APIError.
func NewError(status int, code, description string) *APIError {
	return &APIError{Status: status, Code: code, Description: description}
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an error envelope. Errors that are not APIErrors
// become opaque 500s.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = &APIError{Status: http.StatusInternalServerError, Code: "internal_error"}
	}
	resp := errorResponse{Error: apiErr.Code}
	if apiErr.Status != http.StatusInternalServerError {
		resp.ErrorDescription = apiErr.Description
	}
	WriteJSON(w, apiErr.Status, resp)
}

// DecodeJSON decodes the request body into T, rejecting unknown fields and
// bodies over the size cap. On failure it writes a bad_request envelope and
// reports false; the handler should just return.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (T, bool) {
	var dst T
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if logger != nil {
			logger.WarnContext(r.Context(), "request body rejected", "error", err)
		}
		WriteError(w, NewError(http.StatusBadRequest, "bad_request", "request body is not valid JSON for this operation"))
		return dst, false
	}
	return dst, true
}
