package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"rdapi/internal/domain"
	"rdapi/internal/observability/metrics"
	obsmw "rdapi/internal/observability/middleware"
	"rdapi/internal/service"
)

type ctxKey string

const ctxKeySession ctxKey = "session_context"

// RequireSession wraps every protected route. It resolves the bearer header
// through the token guard once per request and threads the resulting
// SessionContext through the request context. The identity stays
// request-scoped and is never stored anywhere ambient.
func RequireSession(guard service.TokenGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, err := guard.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.GuardChecksTotal.WithLabelValues("rejected").Inc()
					slog.Info("bearer credential rejected",
						"request_id", obsmw.RequestIDFromContext(r.Context()),
						"path", r.URL.Path,
						"reason", err.Error())
					writeAuthError(w, err)
					return
				}
				metrics.GuardChecksTotal.WithLabelValues("error").Inc()
				writeInternalError(w, r, err)
				return
			}
			metrics.GuardChecksTotal.WithLabelValues("ok").Inc()
			ctx := context.WithValue(r.Context(), ctxKeySession, sc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the SessionContext resolved by RequireSession.
func SessionFromContext(ctx context.Context) (*service.SessionContext, bool) {
	sc, ok := ctx.Value(ctxKeySession).(*service.SessionContext)
	return sc, ok
}
