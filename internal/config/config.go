// Package config loads simulation settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the settings for one simulation run.
type Config struct {
	FPS      int    `env:"ECSIM_FPS" envDefault:"60"`
	LogLevel string `env:"ECSIM_LOG_LEVEL" envDefault:"info"`
	// LogFile receives logs; empty disables logging since the terminal is
	// owned by the renderer.
	LogFile  string `env:"ECSIM_LOG_FILE"`
	MaxTicks uint64 `env:"ECSIM_MAX_TICKS" envDefault:"0"`
	Drifters int    `env:"ECSIM_DRIFTERS" envDefault:"3"`
}

// Parse reads the environment without validating it, so callers can apply
// overrides before calling Validate.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return eris.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Drifters < 0 {
		return eris.Errorf("drifters must not be negative, got %d", c.Drifters)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, nil
}
