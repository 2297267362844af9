package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DB
	DatabaseURL string
	LogSQL      bool

	// Sessions
	TokenTTL    time.Duration
	MaxSessions int

	// HTTP
	Addr            string
	CORSOrigins     []string
	LoginRatePerMin int
	RequestTimeout  time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored but optional.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURL: getenv("DATABASE_URL", "file:rdapi.db"),
		LogSQL:      getbool("LOG_SQL", false),

		TokenTTL:    getdur("TOKEN_TTL", 48*time.Hour),
		MaxSessions: getint("MAX_SESSIONS", 10),

		Addr:            getenv("ADDR", ":21114"),
		CORSOrigins:     getlist("CORS_ORIGINS"),
		LoginRatePerMin: getint("LOGIN_RATE_PER_MIN", 30),
		RequestTimeout:  getdur("REQUEST_TIMEOUT", 30*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getlist(k string) []string {
	out := []string{}
	for _, item := range strings.Split(os.Getenv(k), ",") {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
