// Package config loads run settings from the environment and command line.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Front ends.
const (
	FrontendConsole = "console"
	FrontendTUI     = "tui"
	FrontendWindow  = "window"
)

// Console colour modes.
const (
	ColorAuto  = "auto"
	ColorNever = "never"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the binary needs before the game starts.
type Config struct {
	Seed       uint64 `env:"SPACE_PATROL_SEED" envDefault:"0"`
	Frontend   string `env:"SPACE_PATROL_FRONTEND" envDefault:"console"`
	Sound      bool   `env:"SPACE_PATROL_SOUND" envDefault:"false"`
	LogFile    string `env:"SPACE_PATROL_LOG_FILE"`
	PlayerName string `env:"SPACE_PATROL_PLAYER_NAME" envDefault:"Player"`
	Color      string `env:"SPACE_PATROL_COLOR" envDefault:"auto"`
	Rearm      bool   `env:"SPACE_PATROL_REARM_PIRATES" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment into a Config. It does not validate.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers command-line overrides on fs, defaulting to the
// current values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "console, tui or window")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write a debug log to this file")
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "commander name")
	fs.BoolVar(&c.Rearm, "rearm", c.Rearm, "restore destroyed pirates to full health")
}

// Validate rejects settings no front end understands.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendConsole, FrontendTUI, FrontendWindow:
	default:
		return fmt.Errorf("frontend %q: %w", c.Frontend, ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorNever:
	default:
		return fmt.Errorf("color %q: %w", c.Color, ErrInvalidConfig)
	}
	return nil
}
