// Package config loads server configuration from environment variables,
// applying defaults for optional values and failing fast on missing
// required ones.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server's runtime configuration.
type Config struct {
	Port           int
	Host           string
	LogLevel       string
	QuotesFilePath string
	DatabasePath   string
	OTLPEndpoint   string // optional; read from the environment but not used by any component
}

// Load reads configuration from the environment, applying defaults for
// optional variables and fast-failing with a specific message if a
// required variable is missing or malformed.
func Load() (Config, error) {
	cfg := Config{
		Port:     3000,
		Host:     "0.0.0.0",
		LogLevel: "info",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT must be an integer, got %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	quotesPath := os.Getenv("QUOTES_FILE_PATH")
	if quotesPath == "" {
		return Config{}, fmt.Errorf("config: QUOTES_FILE_PATH is required")
	}
	cfg.QuotesFilePath = quotesPath

	cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	return cfg, nil
}
