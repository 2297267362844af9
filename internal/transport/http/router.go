package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/observability/metrics"
	"rdapi/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the transport-level knobs the router needs; everything
// else comes in as service dependencies.
type Options struct {
	CORSOrigins     []string
	LoginRatePerMin int
	RequestTimeout  time.Duration
}

type Deps struct {
	Auth         service.AuthService
	Guard        service.TokenGuard
	Devices      service.DeviceService
	Accounts     service.AccountService
	AddressBooks service.AddressBookService
}

func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		login := loginHandler(deps.Auth)
		if opts.LoginRatePerMin > 0 {
			r.With(httprate.LimitByIP(opts.LoginRatePerMin, time.Minute)).Post("/login", login)
		} else {
			r.Post("/login", login)
		}
		r.Post("/heartbeat", heartbeatHandler(deps.Devices))
		r.Post("/sysinfo", sysinfoHandler(deps.Devices))

		r.Group(func(pr chi.Router) {
			pr.Use(RequireSession(deps.Guard))
			pr.Post("/logout", logoutHandler(deps.Auth))
			pr.Get("/currentUser", currentUserHandler(deps.Auth))
			pr.Post("/currentUser", currentUserHandler(deps.Auth))
			pr.Get("/ab", getAddressBookHandler(deps.AddressBooks))
			pr.Post("/ab", updateAddressBookHandler(deps.AddressBooks))
			pr.Get("/device-group/accessible", emptyListHandler())
			pr.Get("/users", emptyListHandler())
			pr.Get("/peers", emptyListHandler())
		})
	})

	r.Route("/admin/api", func(r chi.Router) {
		// The admin surface is meant to sit behind a restricted reverse
		// proxy; the rate limit is a backstop, not access control.
		r.Use(httprate.LimitByIP(60, time.Minute))
		r.Post("/accounts", addAccountHandler(deps.Accounts))
		r.Put("/accounts", editAccountHandler(deps.Accounts))
		r.Delete("/accounts", deleteAccountHandler(deps.Accounts))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "requested resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "request method not allowed"})
	})

	return r
}

// loginHandler speaks the client's login contract: authentication failures
// and the session cap come back as HTTP 200 with an error field, which is
// what the remote-desktop clients parse.
func loginHandler(auth service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}

		res, err := auth.Login(r.Context(), req)
		switch {
		case err == nil:
			metrics.LoginsTotal.WithLabelValues("ok").Inc()
			writeJSON(w, http.StatusOK, res)
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			writeJSON(w, http.StatusOK, errorBody{Error: "invalid username or password"})
		case isTooManySessions(err):
			var tms *domain.TooManySessionsError
			errors.As(err, &tms)
			metrics.LoginsTotal.WithLabelValues("limited").Inc()
			writeJSON(w, http.StatusOK, errorBody{Error: tooManySessionsMessage(tms.Limit)})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			writeInternalError(w, r, err)
		}
	}
}

func logoutHandler(auth service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := SessionFromContext(r.Context())
		if !ok {
			writeAuthError(w, domain.ErrMissingCredential)
			return
		}
		if err := auth.Logout(r.Context(), sc.Session.ID); err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"data": "signed out"})
	}
}

func currentUserHandler(auth service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := SessionFromContext(r.Context())
		if !ok {
			writeAuthError(w, domain.ErrMissingCredential)
			return
		}
		account, err := auth.CurrentUser(r.Context(), sc.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				writeAuthError(w, domain.ErrUnknownCredential)
				return
			}
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"name":     account.Name,
			"status":   account.Status,
			"is_admin": false,
			"info":     map[string]any{},
		})
	}
}

func heartbeatHandler(devices service.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.HeartbeatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}
		if err := devices.Heartbeat(r.Context(), req.DeviceKey); err != nil {
			metrics.HeartbeatsTotal.WithLabelValues("error").Inc()
			writeInternalError(w, r, err)
			return
		}
		metrics.HeartbeatsTotal.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, map[string]string{"data": "ok"})
	}
}

func sysinfoHandler(devices service.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SysinfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}
		if req.DeviceKey == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing device uuid"})
			return
		}
		if err := devices.UpdateSysinfo(r.Context(), req); err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"data": "system info saved"})
	}
}

func getAddressBookHandler(books service.AddressBookService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := SessionFromContext(r.Context())
		if !ok {
			writeAuthError(w, domain.ErrMissingCredential)
			return
		}
		ab, err := books.Get(r.Context(), sc.AccountID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		payload, err := json.Marshal(ab)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data":       string(payload),
			"updated_at": time.Now().UnixMilli(),
		})
	}
}

func updateAddressBookHandler(books service.AddressBookService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := SessionFromContext(r.Context())
		if !ok {
			writeAuthError(w, domain.ErrMissingCredential)
			return
		}
		var env dto.AddressBookEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}
		var ab dto.AddressBook
		if err := json.Unmarshal([]byte(env.Data), &ab); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad address book payload"})
			return
		}
		if err := books.Replace(r.Context(), sc.AccountID, ab); err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"data": "address book saved"})
	}
}

// emptyListHandler serves the group endpoints the clients poll but this
// deployment does not populate.
func emptyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"total":      0,
			"data":       []any{},
			"updated_at": time.Now().UnixMilli(),
		})
	}
}
