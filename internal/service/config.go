package service

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Modes
const (
	ModeMock = "mock"
	ModeLive = "live"
)

// Config selects the backing implementation. Mock mode serves from the
// in-process store; live mode issues real HTTP calls.
type Config struct {
	Mode       string `env:"CARDVAULT_MODE" envDefault:"mock"`
	APIBaseURL string `env:"CARDVAULT_API_URL" envDefault:"http://localhost:8080"`
}

// ParseEnv loads the service configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Mode != ModeMock && cfg.Mode != ModeLive {
		return Config{}, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeMock, ModeLive)
	}
	return cfg, nil
}
