// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mindarena/internal/arcade"
)

// Config holds every environment-driven setting.
type Config struct {
	// DBPath overrides the default database location. The --db flag wins.
	DBPath string `env:"MINDARENA_DB"`

	// GateURL is probed once at launch. Empty keeps the game native.
	GateURL     string        `env:"MINDARENA_GATE_URL"`
	GateTimeout time.Duration `env:"MINDARENA_GATE_TIMEOUT" envDefault:"5s"`

	// LogFile defaults to mindarena.log next to the database.
	LogFile  string `env:"MINDARENA_LOG_FILE"`
	LogLevel string `env:"MINDARENA_LOG_LEVEL" envDefault:"info"`

	// Catalog is an optional JSON module catalog replacing the builtin one.
	Catalog string `env:"MINDARENA_CATALOG"`

	// FairSpawns draws beneficial arcade entities with probability 2/3
	// instead of the classic 3/4.
	FairSpawns bool `env:"MINDARENA_FAIR_SPAWNS" envDefault:"false"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown values mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Arcade returns the arcade tuning for this configuration.
func (c Config) Arcade() arcade.Config {
	cfg := arcade.DefaultConfig()
	if c.FairSpawns {
		cfg.Bias = arcade.BiasTwoThirds
	}
	return cfg
}
