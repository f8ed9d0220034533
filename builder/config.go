// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil          (no randomness unless seeded)
//   • damageProb   = 0.3
//   • distance     = 1..10
//   • delay        = 0..30
//   • roadClasses  = vehicle.Classes()

package builder

import (
	"math/rand"

	"github.com/katalvlaran/roadnet/vehicle"
)

// MaxRetries bounds how often RandomNetwork redraws a road's target.
const MaxRetries = 50

const (
	defaultDamageProb  = 0.3
	defaultMinDistance = 1
	defaultMaxDistance = 10
	defaultMinDelay    = 0
	defaultMaxDelay    = 30
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng *rand.Rand

	damageProb           float64
	minDistance, maxDist int
	minDelay, maxDelay   int
	roadClasses          []vehicle.Class
}

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		damageProb:  defaultDamageProb,
		minDistance: defaultMinDistance,
		maxDist:     defaultMaxDistance,
		minDelay:    defaultMinDelay,
		maxDelay:    defaultMaxDelay,
		roadClasses: vehicle.Classes(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// intBetween draws uniformly from [lo, hi].
func (c builderConfig) intBetween(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}
