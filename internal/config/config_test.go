package config

import (
	"testing"
	"time"

	"github.com/openchami/nodectl/internal/client"
	"github.com/openchami/nodectl/internal/ingest"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("NODECTL_URL", "")
	t.Setenv("NODECTL_CONCURRENCY", "")
	t.Setenv("NODECTL_TIMEOUT_SECONDS", "")

	cfg := FromEnv()

	if cfg.Concurrency != ingest.DefaultConcurrency {
		t.Errorf("Expected default concurrency %d, got %d", ingest.DefaultConcurrency, cfg.Concurrency)
	}
	if cfg.Timeout != client.DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", client.DefaultTimeout, cfg.Timeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("NODECTL_URL", "http://api.example.com")
	t.Setenv("NODECTL_TOKEN", "tok")
	t.Setenv("NODECTL_SCHEMA_DIR", "/schemas")
	t.Setenv("NODECTL_CONCURRENCY", "5")
	t.Setenv("NODECTL_TIMEOUT_SECONDS", "7")

	cfg := FromEnv()

	if cfg.BaseURL != "http://api.example.com" {
		t.Errorf("Expected URL from env, got %q", cfg.BaseURL)
	}
	if cfg.Token != "tok" {
		t.Errorf("Expected token from env, got %q", cfg.Token)
	}
	if cfg.SchemaDir != "/schemas" {
		t.Errorf("Expected schema dir from env, got %q", cfg.SchemaDir)
	}
	if cfg.Concurrency != 5 {
		t.Errorf("Expected concurrency 5, got %d", cfg.Concurrency)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Expected timeout 7s, got %v", cfg.Timeout)
	}
}

func TestFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("NODECTL_CONCURRENCY", "not-a-number")
	t.Setenv("NODECTL_TIMEOUT_SECONDS", "-3")

	cfg := FromEnv()

	if cfg.Concurrency != ingest.DefaultConcurrency {
		t.Errorf("Expected default concurrency, got %d", cfg.Concurrency)
	}
	if cfg.Timeout != client.DefaultTimeout {
		t.Errorf("Expected default timeout, got %v", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("Expected error for missing base URL")
	}
	if err := (Config{BaseURL: "http://localhost:8080"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
