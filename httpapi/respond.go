package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nols-dev/taskhub"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeDomainError maps a core error onto its status code. Anything
// outside the known taxonomy is a server fault: it is logged by the caller
// and surfaced without internal detail.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, taskhub.ErrFirstNameEmpty),
		errors.Is(err, taskhub.ErrLastNameEmpty),
		errors.Is(err, taskhub.ErrEmailInvalid),
		errors.Is(err, taskhub.ErrPasswordLength),
		errors.Is(err, taskhub.ErrPasswordMismatch),
		errors.Is(err, taskhub.ErrPasswordReuse):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, taskhub.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, taskhub.ErrTodoNotFound), errors.Is(err, taskhub.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, taskhub.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, taskhub.ErrLoginRateLimited):
		writeError(w, http.StatusTooManyRequests, taskhub.ErrLoginRateLimited.Error())
	case errors.Is(err, taskhub.ErrLoginUnavailable):
		s.log.Error("login limiter backend failure", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		s.log.Error("internal error", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
