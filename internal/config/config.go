// Package config loads CLI defaults from POCKETCUBE_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI defaults sourced from the environment. Flags override
// these values, which in turn override built-in defaults.
type Config struct {
	// DBPath is the database file path from POCKETCUBE_DB.
	DBPath string `env:"POCKETCUBE_DB"`
	// StatePath is the state file path from POCKETCUBE_STATE.
	StatePath string `env:"POCKETCUBE_STATE"`
	// LogLevel is the logging level from POCKETCUBE_LOG_LEVEL.
	LogLevel string `env:"POCKETCUBE_LOG_LEVEL"`
	// ScrambleLength is the default scramble length from POCKETCUBE_SCRAMBLE_LENGTH.
	ScrambleLength int `env:"POCKETCUBE_SCRAMBLE_LENGTH"`
}

// Load reads configuration from the process environment. A .env file in
// the working directory is applied first when present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
