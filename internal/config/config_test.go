package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PRANA_ADDR", "PRANA_JWT_SECRET", "PRANA_API_TIMEOUT", "PRANA_DATABASE_PATH", "PRANA_TOKEN_DURATION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.DatabasePath != "prana.db" {
		t.Errorf("DatabasePath = %q, want prana.db", cfg.DatabasePath)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Errorf("APITimeout = %s, want 15s", cfg.APITimeout)
	}
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %s, want 24h", cfg.TokenDuration)
	}
	if cfg.JWTSecret == "" {
		t.Errorf("JWTSecret should have a default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PRANA_ADDR", ":8080")
	t.Setenv("PRANA_JWT_SECRET", "env-secret")
	t.Setenv("PRANA_API_TIMEOUT", "5s")
	t.Setenv("PRANA_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("PRANA_TOKEN_DURATION", "1h")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Addr != ":8080" || cfg.JWTSecret != "env-secret" || cfg.DatabasePath != "/tmp/env.db" {
		t.Fatalf("env values not applied: %#v", cfg)
	}
	if cfg.APITimeout != 5*time.Second || cfg.TokenDuration != time.Hour {
		t.Fatalf("duration env values not applied: %#v", cfg)
	}
}

func TestLoadConfigInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PRANA_API_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("APITimeout = %s, want default 15s", cfg.APITimeout)
	}
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	t.Setenv("PRANA_ADDR", ":8080")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9090\"\ndatabase_path: /tmp/yaml.db\ntimeout: 30s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	// the file wins over the environment
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.DatabasePath != "/tmp/yaml.db" {
		t.Errorf("DatabasePath = %q, want /tmp/yaml.db", cfg.DatabasePath)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %s, want 30s", cfg.APITimeout)
	}
	// keys absent from the file keep their defaults
	if cfg.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %s, want 24h", cfg.TokenDuration)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
