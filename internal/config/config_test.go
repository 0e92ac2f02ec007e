package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "addr: \":9999\"\nbackendBaseUrl: http://backend.internal\njwtSecret: file-secret\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STORELANE_CONFIG", path)
	t.Setenv("STORELANE_JWT_SECRET", "env-secret")
	t.Setenv("STORELANE_ADDR", "")
	t.Setenv("STORELANE_BACKEND_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.BackendBaseURL != "http://backend.internal" {
		t.Errorf("expected backend url from file, got %q", cfg.BackendBaseURL)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("environment must override the file, got %q", cfg.JWTSecret)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("STORELANE_CONFIG", "")
	t.Setenv("STORELANE_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when no JWT secret is configured")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORELANE_CONFIG", "")
	t.Setenv("STORELANE_JWT_SECRET", "s")
	t.Setenv("STORELANE_ADDR", "")
	t.Setenv("STORELANE_BACKEND_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.BackendBaseURL != "http://localhost:9000" {
		t.Errorf("unexpected default backend url %q", cfg.BackendBaseURL)
	}
}
