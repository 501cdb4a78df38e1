// Package config reads va-creator settings from the environment.
// Command-line flags, when given, take precedence over these values.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that are not part of the argument grammar.
type Config struct {
	BaseURL  string        `env:"VA_CREATOR_BASE_URL" envDefault:"http://localhost:2001"`
	Timeout  time.Duration `env:"VA_CREATOR_TIMEOUT" envDefault:"30s"`
	LogLevel string        `env:"VA_CREATOR_LOG_LEVEL" envDefault:"warn"`
	DryRun   bool          `env:"VA_CREATOR_DRY_RUN"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("VA_CREATOR_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
