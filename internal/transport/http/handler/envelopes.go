package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nomzbank/auth-api/internal/domain"
)

// SuccessEnvelope acknowledges an operation without echoing any data.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}

// ExistsEnvelope answers the email-existence check.
type ExistsEnvelope struct {
	Exists bool `json:"exists"`
}

// ErrorEnvelope is the generic error response wrapper.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Error: msg})
}

// httpError maps domain sentinel errors to status codes. Caller mistakes are
// 400; store and delivery failures surface as 500 with their message.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrNoCodeSent),
		errors.Is(err, domain.ErrCodeExpired),
		errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
