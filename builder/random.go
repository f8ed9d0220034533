// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// random.go - random road networks.

package builder

import (
	"github.com/katalvlaran/roadnet/core"
)

// RandomNetwork adds intersections 1..n and attempts `roads` one-way roads.
//
// For each road the source is drawn from 1..n once; the target is drawn and
// redrawn while it equals the source or the road already exists, at most
// MaxRetries times. A road whose retries run out is skipped, so the result may
// hold fewer than `roads` roads. Accepted roads get a distance and delay from
// the configured ranges, are damaged with the configured probability, and are
// labeled with a random road class.
//
// Requires cfg.rng (WithSeed or WithRand), n ≥ 2 and 0 ≤ roads ≤ n·(n-1).
//
// Complexity: O(roads·MaxRetries).
func RandomNetwork(n, roads int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "RandomNetwork"
		if n < 2 {
			return builderErrorf(method, "n=%d: %w", n, ErrTooFewNodes)
		}
		if roads < 0 || roads > n*(n-1) {
			return builderErrorf(method, "roads=%d: %w", roads, ErrTooManyRoads)
		}
		if cfg.rng == nil {
			return builderErrorf(method, "%w", ErrNeedRandSource)
		}

		for id := 1; id <= n; id++ {
			g.AddNode(core.NodeID(id))
		}

		for i := 0; i < roads; i++ {
			from := core.NodeID(cfg.intBetween(1, n))
			to := core.NodeID(cfg.intBetween(1, n))
			attempts := 0
			for (from == to || g.HasEdge(from, to)) && attempts < MaxRetries {
				to = core.NodeID(cfg.intBetween(1, n))
				attempts++
			}
			if attempts >= MaxRetries {
				continue
			}

			distance := cfg.intBetween(cfg.minDistance, cfg.maxDist)
			delay := cfg.intBetween(cfg.minDelay, cfg.maxDelay)
			damaged := cfg.rng.Float64() < cfg.damageProb
			class := cfg.roadClasses[cfg.rng.Intn(len(cfg.roadClasses))]

			err := g.AddEdge(from, to, float64(distance), float64(delay),
				core.WithDamage(damaged), core.WithRoadClass(class))
			if err != nil {
				return builderErrorf(method, "road %d→%d: %w: %w", from, to, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
