// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// demo.go - the fixed five-intersection demo network.

package builder

import (
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/vehicle"
)

// demoRoad is one two-way street of the demo network.
type demoRoad struct {
	a, b            core.NodeID
	distance, delay float64
}

var demoRoads = [...]demoRoad{
	{0, 1, 10, 5},
	{0, 2, 15, 10},
	{0, 3, 20, 15},
	{0, 4, 25, 20},
	{1, 2, 10, 5},
	{1, 3, 12, 7},
	{1, 4, 18, 10},
	{2, 3, 10, 5},
	{2, 4, 12, 6},
	{3, 4, 10, 5},
}

// DemoRoads adds intersections 0..4 and ten undamaged two-way streets
// labeled car, in the order listed above.
//
// Complexity: O(1).
func DemoRoads() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, r := range demoRoads {
			if err := g.AddRoad(r.a, r.b, r.distance, r.delay, core.WithRoadClass(vehicle.Car)); err != nil {
				return builderErrorf("DemoRoads", "road %d-%d: %w", r.a, r.b, err)
			}
		}

		return nil
	}
}
