package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rdapi/internal/domain"
	obsmw "rdapi/internal/observability/middleware"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func isTooManySessions(err error) bool {
	var tms *domain.TooManySessionsError
	return errors.As(err, &tms)
}

func tooManySessionsMessage(limit int) string {
	return fmt.Sprintf("an account may be signed in on at most %d devices at once", limit)
}

type messageBody struct {
	Message string `json:"message"`
}

// writeAuthError maps a token-guard rejection to its user-facing message.
// The sub-reason stays in the logs; the client only learns it has to sign in
// again.
func writeAuthError(w http.ResponseWriter, err error) {
	msg := "credential invalid"
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		msg = "please sign in"
	case errors.Is(err, domain.ErrMalformedCredential):
		msg = "credential malformed"
	case errors.Is(err, domain.ErrCredentialExpired):
		msg = "session expired, please sign in again"
	}
	writeJSON(w, http.StatusUnauthorized, errorBody{Error: msg})
}

// writeInternalError is the catch-all for storage failures: generic and
// retryable from the client's point of view, never silent on ours.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"request_id", obsmw.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "service temporarily unavailable, try again later"})
}
