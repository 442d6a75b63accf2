// Package httpjson holds the JSON request/response conventions shared by
// every handler: decode with a size cap, respond with a status and value, and
// map error kinds to the structured {success:false, message} error body.
//
// Dependency failures (Mongo, Stripe) never reach the client in detail. The
// handler logs the cause and calls ServerError, which sends a generic 500.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies. All bodies in this API are small JSON
// documents; a lesson body tops out well under this.
const maxBodyBytes = 1 << 20

// errorBody is the structured client-error response shape.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrEmptyBody is returned by Decode when the request carries no body at all.
var ErrEmptyBody = errors.New("empty request body")

// Decode reads the request body into v. It tolerates a completely absent
// body by returning ErrEmptyBody so callers that accept optional bodies
// (admin gates reading email from query OR body) can distinguish that case.
func Decode(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a structured client-error body.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorBody{Success: false, Message: message})
}

// BadRequest reports a validation failure (missing or malformed field).
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound reports that a referenced identity does not exist.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Unauthorized reports a missing identity on a gated route.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden reports a role or ownership gate failure.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// ServerError reports a dependency failure without detailing the cause.
func ServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
