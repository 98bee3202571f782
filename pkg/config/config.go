// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	ErrAPIURLMissing     = errors.New("environment variable API_URL must be set")
	ErrInvalidDriver     = errors.New("DATABASE_DRIVER must be one of sqlite, mysql")
	ErrInvalidPolicy     = errors.New("COST_DELETE_RESTORE_POLICY must be one of none, restore-deducted")
	ErrInvalidLogFormat  = errors.New("LOG_FORMAT must be one of json, human")
	ErrCurrencyMalformed = errors.New("CURRENCY must be a three letter ISO 4217 code")
)

// Database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Restore policies for deleted material cost entries.
const (
	RestorePolicyNone     = "none"
	RestorePolicyDeducted = "restore-deducted"
)

// Database configures the storage backend.
type Database struct {
	Driver  string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DSN     string `env:"DATABASE_DSN" envDefault:"data/gesso.db"`
	Tracing bool   `env:"TRACING_ENABLED" envDefault:"false"`
}

// Config is the complete runtime configuration of the backend.
type Config struct {
	APIURLRaw     string   `env:"API_URL"`
	GinMode       string   `env:"GIN_MODE" envDefault:"release"`
	LogFormat     string   `env:"LOG_FORMAT" envDefault:"json"`
	CORSOrigins   []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof   bool     `env:"ENABLE_PPROF" envDefault:"false"`
	Currency      string   `env:"CURRENCY" envDefault:"BRL"`
	RestorePolicy string   `env:"COST_DELETE_RESTORE_POLICY" envDefault:"none"`
	Database      Database

	// APIURL is the parsed form of APIURLRaw
	APIURL *url.URL `env:"-"`
}

// Parse reads the configuration from the process environment.
func Parse() (Config, error) {
	return ParseEnv(nil)
}

// ParseEnv reads the configuration. When environment is not nil, it is used
// instead of the process environment.
func ParseEnv(environment map[string]string) (Config, error) {
	var cfg Config

	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Debug reports if the backend runs in gin's debug mode.
func (c Config) Debug() bool {
	return c.GinMode == "debug"
}

func (c *Config) validate() error {
	if c.APIURLRaw == "" {
		return ErrAPIURLMissing
	}

	u, err := url.Parse(c.APIURLRaw)
	if err != nil {
		return fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	c.APIURL = u

	switch c.Database.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidDriver, c.Database.Driver)
	}

	switch c.RestorePolicy {
	case RestorePolicyNone, RestorePolicyDeducted:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidPolicy, c.RestorePolicy)
	}

	switch c.LogFormat {
	case "json", "human":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.LogFormat)
	}

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if len(c.Currency) != 3 {
		return ErrCurrencyMalformed
	}

	return nil
}
