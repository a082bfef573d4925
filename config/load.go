package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// AppConfig holds the bootstrap settings read straight from the environment.
// Secrets are read later through a Manager.
type AppConfig struct {
	ServiceName        string        `env:"SERVICE_NAME" envDefault:"backoffice-api"`
	Environment        string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ConfigSource       string        `env:"CONFIG_SOURCE" envDefault:"env-file"`
	ConfigSourceConfig string        `env:"CONFIG_SOURCE_CONFIG"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// Load parses environment variables into AppConfig.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTPPort)
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
