// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// DatabaseURL is the Postgres connection string. When DATABASE_URL is not
	// set it is composed from the DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and
	// DB_NAME variables, whose defaults match the compose file.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DeleteDelay is how long a delete job waits before removing the address.
	// Defaults to 5s. Set DELETE_DELAY to any Go duration string to override.
	DeleteDelay time.Duration
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			getEnv("DB_USER", "admin"),
			getEnv("DB_PASSWORD", "admin123"),
			getEnv("DB_HOST", "main-db"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "main_db"),
		)
	}

	delay, err := time.ParseDuration(getEnv("DELETE_DELAY", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DELETE_DELAY: %w", err)
	}
	cfg.DeleteDelay = delay

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
