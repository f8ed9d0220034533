// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/roadnet/vehicle"
)

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDamageProbability sets the chance that a random road is damaged.
// Panics outside [0, 1].
func WithDamageProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithDamageProbability(p∉[0,1])")
	}
	return func(c *builderConfig) {
		c.damageProb = p
	}
}

// WithDistanceRange sets the inclusive distance range of random roads.
// Panics if lo < 0 or hi < lo.
func WithDistanceRange(lo, hi int) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithDistanceRange(invalid)")
	}
	return func(c *builderConfig) {
		c.minDistance, c.maxDist = lo, hi
	}
}

// WithDelayRange sets the inclusive delay range of random roads.
// Panics if lo < 0 or hi < lo.
func WithDelayRange(lo, hi int) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithDelayRange(invalid)")
	}
	return func(c *builderConfig) {
		c.minDelay, c.maxDelay = lo, hi
	}
}

// WithRoadClasses restricts the labels drawn for random roads. Panics if empty.
func WithRoadClasses(classes ...vehicle.Class) BuilderOption {
	if len(classes) == 0 {
		panic("builder: WithRoadClasses()")
	}
	cp := append([]vehicle.Class(nil), classes...)
	return func(c *builderConfig) {
		c.roadClasses = cp
	}
}
