package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port          string        `env:"SERVER_PORT" envDefault:"8080"`
	Env           string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout   time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout  time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	SecureCookies bool          `env:"SERVER_SECURE_COOKIES" envDefault:"false"`
}

// BackendConfig holds content backend connection settings
type BackendConfig struct {
	URL     string        `env:"CODEX_BACKEND_URL" envDefault:"http://localhost:1337"`
	Timeout time.Duration `env:"CODEX_BACKEND_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}

	if c.Backend.URL == "" {
		errs = append(errs, errors.New("CODEX_BACKEND_URL is required"))
	} else if u, err := url.Parse(c.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("CODEX_BACKEND_URL must be an absolute URL, got '%s'", c.Backend.URL))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("CODEX_BACKEND_TIMEOUT must be positive"))
	}

	if c.IsProduction() && !c.Server.SecureCookies {
		errs = append(errs, errors.New("SERVER_SECURE_COOKIES must be true in production"))
	}

	return errors.Join(errs...)
}
