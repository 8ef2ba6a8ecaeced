// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GALLERYDECK_API_URL", "GALLERYDECK_TIMEOUT", "GALLERYDECK_TOKEN_FILE",
		"GALLERYDECK_ENV", "GALLERYDECK_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL: got %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout: got %v, want 30s", cfg.Timeout)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("Env: got %q, IsDev=%v", cfg.Env, cfg.IsDev())
	}
	if !strings.HasSuffix(cfg.TokenFile, "/.config/gallerydeck/token") {
		t.Errorf("TokenFile: got %q", cfg.TokenFile)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel: got %v, want info", cfg.SlogLevel())
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GALLERYDECK_API_URL", "https://gallery.example.edu")
	t.Setenv("GALLERYDECK_TIMEOUT", "5s")
	t.Setenv("GALLERYDECK_TOKEN_FILE", "/tmp/deck-token")
	t.Setenv("GALLERYDECK_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://gallery.example.edu" {
		t.Errorf("APIBaseURL: got %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout: got %v, want 5s", cfg.Timeout)
	}
	if cfg.TokenFile != "/tmp/deck-token" {
		t.Errorf("TokenFile: got %q", cfg.TokenFile)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel: got %v, want debug", cfg.SlogLevel())
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GALLERYDECK_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load with invalid timeout: got nil error")
	}
}

// TestLoad_ProductionGuards verifies that production mode refuses a
// plaintext API endpoint.
func TestLoad_ProductionGuards(t *testing.T) {
	clearEnv(t)
	t.Setenv("GALLERYDECK_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load in production with http URL: got nil error")
	}

	t.Setenv("GALLERYDECK_API_URL", "https://gallery.example.edu")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev in production: got true")
	}
}
