// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting read at startup.
type Config struct {
	// Seed for the deck shuffle. Zero deals a random game.
	Seed int64 `env:"LOSTCITIES_SEED" envDefault:"0"`

	LogLevel string `env:"LOSTCITIES_LOG_LEVEL" envDefault:"info"`
	// LogFile receives the JSON log; the terminal belongs to the UI.
	LogFile string `env:"LOSTCITIES_LOG_FILE" envDefault:"lostcities.log"`

	Telemetry        bool   `env:"LOSTCITIES_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_LOSTCITIES_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_LOSTCITIES_DATASET" envDefault:"lostcities"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
