// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed  = "BANANALIKE_SEED"
	EnvLog   = "BANANALIKE_LOG"
	EnvTrace = "BANANALIKE_TRACE"
)

// ErrInvalidSeed is returned when BANANALIKE_SEED is not an integer.
var ErrInvalidSeed = errors.New("invalid seed")

// Config holds game configuration options.
type Config struct {
	// Seed for map generation. Zero means a time-based seed.
	Seed int64
	// LogFile receives log output while a terminal session owns the screen.
	// Empty discards it.
	LogFile string
	// Trace enables OTLP trace export.
	Trace bool
}

// Load reads the given .env files (default ".env"; missing files are
// ignored) and then parses the process environment. Variables already set
// in the environment take precedence over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config

	if s := strings.TrimSpace(getenv(EnvSeed)); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvSeed, s, ErrInvalidSeed)
		}
		cfg.Seed = seed
	}

	cfg.LogFile = strings.TrimSpace(getenv(EnvLog))

	switch strings.ToLower(strings.TrimSpace(getenv(EnvTrace))) {
	case "1", "true", "yes", "on":
		cfg.Trace = true
	}
	return cfg, nil
}
