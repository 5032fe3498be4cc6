package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/luthier/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// Codes for failures that happen before a calculator runs.
const (
	codeBadRequest   errors.Code = "BAD_REQUEST"
	codeBodyTooLarge errors.Code = "REQUEST_TOO_LARGE"
)

func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode response", "err", err)
	}
}

// writeError maps err to a status code. Coded user errors are 422, anything
// uncoded or internal is 500 and its message is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.IsUserError(err):
		status = http.StatusUnprocessableEntity
		msg = errors.UserMessage(err)
	default:
		if code == "" {
			code = errors.ErrCodeInternal
		}
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err,
			"request_id", RequestIDFromContext(r.Context()))
	}
	s.writeJSON(w, ErrorResponse{Error: msg, Code: code}, status)
}

// decode reads a JSON body into v. It writes the error response itself and
// reports whether the handler should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		s.writeJSON(w, ErrorResponse{Error: "request body too large", Code: codeBodyTooLarge},
			http.StatusRequestEntityTooLarge)
		return false
	}
	s.writeJSON(w, ErrorResponse{Error: "invalid JSON body: " + err.Error(), Code: codeBadRequest},
		http.StatusBadRequest)
	return false
}
