// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors wrap these with %w and context.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a node count below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrTooManyRoads indicates a road count above n*(n-1), the number of ordered pairs.
var ErrTooManyRoads = errors.New("builder: more roads than ordered node pairs")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed core mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
