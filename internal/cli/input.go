package cli

import (
	"github.com/katalvlaran/roadnet/internal/config"
)

// Input holds the flag values of one invocation.
type Input struct {
	graphPath   string
	logLevel    string
	logFormat   string
	verbose     bool
	exactLimit  int
	seed        int64
	metricsFile string

	// per-command flags
	pathVehicle  string
	routeVehicle string
	start        int
	mode         string
	nodes        int
	roads        int
	output       string
}

// newInput seeds flag defaults from the resolved configuration.
func newInput(cfg config.Config) *Input {
	return &Input{
		graphPath:  cfg.GraphPath,
		logLevel:   cfg.LogLevel,
		logFormat:  cfg.LogFormat,
		exactLimit: cfg.ExactLimit,
		seed:       cfg.Seed,
	}
}
