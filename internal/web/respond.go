// respond.go writes JSON envelopes and maps service errors to HTTP status.
//
// Every JSON response is an object with a "success" flag. Failures add a
// "message"; successes merge their payload fields into the same object so
// clients never unwrap a nested "data" key.

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/validate"
)

// payload is the set of fields merged into a success envelope.
type payload map[string]any

// writeJSON writes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response", "error", err)
	}
}

// ok writes a success envelope. message may be empty.
func (s *Server) ok(w http.ResponseWriter, message string, p payload) {
	body := map[string]any{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range p {
		body[k] = v
	}
	s.writeJSON(w, http.StatusOK, body)
}

// fail writes a failure envelope for err.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

// badRequest writes a failure envelope for a malformed request.
func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": msg})
}

// classify maps an error to a status code and a client-safe message.
// Not-found errors drop their detail: the detail would name the rejected
// path, which is the caller's own input but may echo a traversal attempt.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, files.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, files.ErrInvalidName),
		errors.Is(err, files.ErrInvalidPath),
		errors.Is(err, validate.ErrPathTooLong),
		errors.Is(err, files.ErrNotDir),
		errors.Is(err, files.ErrIsDir):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, files.ErrExists),
		errors.Is(err, files.ErrNotEmpty):
		return http.StatusConflict, err.Error()
	case errors.Is(err, files.ErrRoot):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, files.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
