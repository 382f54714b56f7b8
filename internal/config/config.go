// Package config loads d2ictl settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/joshuapare/d2ikit/internal/logger"
)

// ErrInvalid indicates a setting that parsed but is not usable.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every environment-controlled setting. Command-line flags
// override these values.
type Config struct {
	// PropsPath and ItemsPath replace the built-in tables with TSV files.
	PropsPath string `env:"D2I_PROPS_PATH"`
	ItemsPath string `env:"D2I_ITEMS_PATH"`
	// DBPath loads both tables from a sqlite database. It wins over the TSV paths.
	DBPath string `env:"D2I_DB_PATH"`

	Workers  int    `env:"D2I_WORKERS"   envDefault:"4"`
	LogLevel string `env:"D2I_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"D2I_LOG_FILE"`
}

// Load reads the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads settings from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: D2I_WORKERS must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: D2I_LOG_LEVEL: %w", ErrInvalid, err)
	}
	return nil
}
