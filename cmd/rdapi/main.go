package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"rdapi/internal/config"
	"rdapi/internal/domain"
	"rdapi/internal/observability/metrics"
	obsmw "rdapi/internal/observability/middleware"
	impl "rdapi/internal/service/impl"
	"rdapi/internal/store"
	httpx "rdapi/internal/transport/http"
	"rdapi/pkg/db"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	metrics.MustRegister("rdapi")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := gdb.AutoMigrate(
		&domain.Account{},
		&domain.Device{},
		&domain.Session{},
		&domain.TagSet{},
		&domain.AddressBookPeer{},
	); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	auth := impl.NewAuthServiceImpl(st, cfg.TokenTTL, cfg.MaxSessions)
	guard := impl.NewTokenGuardImpl(st)
	devices := impl.NewDeviceServiceImpl(st, cfg.TokenTTL)
	accounts := impl.NewAccountServiceImpl(st)
	books := impl.NewAddressBookServiceImpl(st)

	router := httpx.NewRouter(httpx.Options{
		CORSOrigins:     cfg.CORSOrigins,
		LoginRatePerMin: cfg.LoginRatePerMin,
		RequestTimeout:  cfg.RequestTimeout,
	}, httpx.Deps{
		Auth:         auth,
		Guard:        guard,
		Devices:      devices,
		Accounts:     accounts,
		AddressBooks: books,
	})

	handler := obsmw.WithRequestID(obsmw.WithMetrics(router))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("rdapi listening",
		"addr", srv.Addr,
		"token_ttl", cfg.TokenTTL.String(),
		"max_sessions", cfg.MaxSessions,
	)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
