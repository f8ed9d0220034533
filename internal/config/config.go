// Package config resolves runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/roadnet/tsp"
)

// Environment variable names.
const (
	EnvGraph      = "ROADNET_GRAPH"
	EnvLogLevel   = "ROADNET_LOG_LEVEL"
	EnvLogFormat  = "ROADNET_LOG_FORMAT"
	EnvExactLimit = "ROADNET_EXACT_LIMIT"
	EnvSeed       = "ROADNET_SEED"
)

// Config holds settings shared by every command.
type Config struct {
	// GraphPath is a road network file; empty selects the built-in demo network.
	GraphPath  string
	LogLevel   string
	LogFormat  string
	ExactLimit int
	Seed       int64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		ExactLimit: tsp.DefaultExactLimit,
		Seed:       1,
	}
}

// Load reads files (default ".env") into the process environment if they
// exist, then builds a Config from the environment. Variables already set
// take precedence over file contents.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		GraphPath: getEnv(EnvGraph, def.GraphPath),
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, def.LogLevel)),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, def.LogFormat)),
	}

	limit, err := strconv.Atoi(getEnv(EnvExactLimit, strconv.Itoa(def.ExactLimit)))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnvExactLimit, err)
	}
	cfg.ExactLimit = limit

	seed, err := strconv.ParseInt(getEnv(EnvSeed, strconv.FormatInt(def.Seed, 10)), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
	}
	cfg.Seed = seed

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("config: %s: unsupported format %q", EnvLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
