package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	JWT      JWTConfig
}

type DatabaseConfig struct {
	// DSN is the SQLite connection string, e.g. "todo.db" or
	// "file:todo.db?cache=shared".
	DSN string `env:"DATABASE_DSN, required"`
}

type JWTConfig struct {
	Secret        string `env:"JWT_SECRET,         required"`
	Issuer        string `env:"JWT_ISSUER,         required"`
	Audience      string `env:"JWT_AUDIENCE,       required"`
	ExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES, required"`
}

// TokenTTL returns the configured token validity window.
func (c JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
// A missing or invalid required value is an error the caller must treat as
// fatal: the service never starts with partial token or database settings.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// validate rejects values envconfig cannot: required variables that are set
// but blank, and non-positive expiry windows.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("DATABASE_DSN must not be blank")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("JWT_SECRET must not be blank")
	}
	if strings.TrimSpace(c.JWT.Issuer) == "" {
		return fmt.Errorf("JWT_ISSUER must not be blank")
	}
	if strings.TrimSpace(c.JWT.Audience) == "" {
		return fmt.Errorf("JWT_AUDIENCE must not be blank")
	}
	if c.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be positive, got %d", c.JWT.ExpiryMinutes)
	}
	return nil
}

// IsDevelopment reports whether the process runs in development mode, which
// switches logging to pretty console output.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
