// Package config holds the explicit configuration value passed into every
// command. Flags win over environment variables; there is no process-wide
// mutable state.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/openchami/nodectl/internal/client"
	"github.com/openchami/nodectl/internal/ingest"
)

// Config carries everything the commands and the engine need.
type Config struct {
	BaseURL     string
	Token       string
	SchemaDir   string
	Concurrency int
	Timeout     time.Duration
	// Strict makes the process exit non-zero when any batch item fails.
	Strict bool
}

// FromEnv builds a Config from the environment, loading a .env file first
// when one is present. Values left empty here are filled in by flags.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     os.Getenv("NODECTL_URL"),
		Token:       os.Getenv("NODECTL_TOKEN"),
		SchemaDir:   os.Getenv("NODECTL_SCHEMA_DIR"),
		Concurrency: ingest.DefaultConcurrency,
		Timeout:     client.DefaultTimeout,
	}

	if v := os.Getenv("NODECTL_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("NODECTL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}

// Validate checks that the config is usable for API calls.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("config: base URL is required (--url or NODECTL_URL)")
	}
	return nil
}
