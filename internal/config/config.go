// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Gallery API settings
	APIBaseURL string
	Timeout    time.Duration

	// Local state
	TokenFile string

	// Runtime
	Env      string // "development", "production", "testing"
	LogLevel string // "debug", "info", "warn", "error"
}

// Load reads configuration from a .env file (when present) and the
// environment, applying defaults for development where appropriate.
// Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: envOrDefault("GALLERYDECK_API_URL", "http://localhost:8000"),
		TokenFile:  os.Getenv("GALLERYDECK_TOKEN_FILE"),
		Env:        envOrDefault("GALLERYDECK_ENV", "development"),
		LogLevel:   envOrDefault("GALLERYDECK_LOG_LEVEL", "info"),
	}

	timeout := envOrDefault("GALLERYDECK_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("GALLERYDECK_TIMEOUT: %w", err)
	}
	cfg.Timeout = d

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, ".config", "gallerydeck", "token")
	}

	if cfg.Env == "production" {
		if !strings.HasPrefix(cfg.APIBaseURL, "https://") {
			return nil, fmt.Errorf("GALLERYDECK_API_URL must use https in production")
		}
	}

	return cfg, nil
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel maps the configured log level onto slog's levels, falling
// back to info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
