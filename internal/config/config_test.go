package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("CLIENT_DB_PATH", "")
	t.Setenv("SESSION_DIR", "")
	t.Setenv("GENERATE_TIMEOUT_SEC", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW_SEC", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.GenerateTimeout() != 30*time.Second {
		t.Fatalf("GenerateTimeout default expected 30s, got %v", cfg.GenerateTimeout())
	}
	if cfg.RateLimitMax != 5 || cfg.RateWindow() != time.Minute {
		t.Fatalf("rate limit defaults expected 5/60s, got %d/%v", cfg.RateLimitMax, cfg.RateWindow())
	}
	if cfg.ClientDBPath == "" {
		t.Fatalf("ClientDBPath default must be non-empty")
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("GENERATE_TIMEOUT_SEC", "10")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.GenerateTimeout() != 10*time.Second {
		t.Fatalf("GenerateTimeout expected 10s, got %v", cfg.GenerateTimeout())
	}
}

func TestNewConfig_ClientPathsFromEnv(t *testing.T) {
	t.Setenv("CLIENT_DB_PATH", "/tmp/spelltales-test/db")
	t.Setenv("SESSION_DIR", "/tmp/spelltales-test/session")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ClientDBPath != "/tmp/spelltales-test/db" {
		t.Fatalf("ClientDBPath expected from env, got %q", cfg.ClientDBPath)
	}
	if cfg.SessionDir != "/tmp/spelltales-test/session" {
		t.Fatalf("SessionDir expected from env, got %q", cfg.SessionDir)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
