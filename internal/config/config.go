package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/seasonrank/internal/logger"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	Addr                string
	DBDriver            string
	DBDSN               string
	LogLevel            string
	RequestTimeout      time.Duration
	StoreBatchSize      int
	StoreMaxConcurrency int
	CORSAllowedOrigins  []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBDriver:            envOr("DB_DRIVER", DriverSQLite),
		DBDSN:               envOr("DB_DSN", "file:seasonrank.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		RequestTimeout:      envDurationOr("REQUEST_TIMEOUT", 15*time.Second),
		StoreBatchSize:      envIntOr("STORE_BATCH_SIZE", 500),
		StoreMaxConcurrency: envIntOr("STORE_MAX_CONCURRENCY", 4),
		CORSAllowedOrigins:  envListOr("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// Validate reports every setting that would prevent the server from starting.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, fmt.Errorf("ADDR cannot be empty"))
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.DBDriver))
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		errs = append(errs, fmt.Errorf("DB_DSN cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not a known level", c.LogLevel))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", c.RequestTimeout))
	}
	if c.StoreBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("STORE_BATCH_SIZE must be positive, got %d", c.StoreBatchSize))
	}
	if c.StoreMaxConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("STORE_MAX_CONCURRENCY must be positive, got %d", c.StoreMaxConcurrency))
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
