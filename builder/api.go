// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// api.go - public entry-points for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// FixedDemo returns a fresh copy of the demo network built by DemoRoads.
func FixedDemo() *core.Graph {
	g, err := BuildGraph(nil, DemoRoads())
	if err != nil {
		// the table in demo.go is static
		panic(err)
	}

	return g
}

// RandomRoads builds a random network of roads over intersections 1..nodes.
// A seed or RNG must be supplied through opts.
func RandomRoads(nodes, roads int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, RandomNetwork(nodes, roads))
}
