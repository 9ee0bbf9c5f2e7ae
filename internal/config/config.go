// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	LogLevel        string // zerolog level name (debug, info, warn, ...)
	DiagAddr        string // Listen address for the diagnostics endpoint; empty disables it
	GuessMin        int    // Lowest number the guessing game draws
	GuessMax        int    // Highest number the guessing game draws
	MadLibsTemplate string // Path to a custom story; empty uses the embedded one
	WrapWidth       int    // Column long text is wrapped at
}

// Load reads .env (if present) and then the environment.
// A malformed integer is an error; a missing value falls back to its default.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "warn"),
		DiagAddr:        os.Getenv("DIAG_ADDR"),
		MadLibsTemplate: os.Getenv("MADLIBS_TEMPLATE_FILE"),
	}
	var err error
	if cfg.GuessMin, err = getEnvAsInt("GUESS_MIN", 1); err != nil {
		return Config{}, err
	}
	if cfg.GuessMax, err = getEnvAsInt("GUESS_MAX", 100); err != nil {
		return Config{}, err
	}
	if cfg.WrapWidth, err = getEnvAsInt("WRAP_WIDTH", 72); err != nil {
		return Config{}, err
	}
	if cfg.GuessMin > cfg.GuessMax {
		return Config{}, fmt.Errorf("GUESS_MIN %d is greater than GUESS_MAX %d", cfg.GuessMin, cfg.GuessMax)
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
