package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDemo(t *testing.T) {
	g := builder.FixedDemo()

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, g.Nodes())
	assert.Equal(t, 20, g.EdgeCount())

	e, err := g.Edge(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 25.0, e.Distance)
	assert.Equal(t, 20.0, e.Delay)
	assert.Equal(t, vehicle.Car, e.RoadClass)
	assert.Zero(t, g.Stats().DamagedCount)

	// independent copies
	require.NoError(t, g.AddEdge(0, 9, 1, 1))
	assert.False(t, builder.FixedDemo().HasNode(9))
}

func TestRandomRoads_Deterministic(t *testing.T) {
	a, err := builder.RandomRoads(10, 30, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomRoads(10, 30, builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Len(t, a.Nodes(), 10)
	assert.LessOrEqual(t, a.EdgeCount(), 30)
}

func TestRandomRoads_Attributes(t *testing.T) {
	g, err := builder.RandomRoads(15, 80, builder.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Distance, 1.0)
		assert.LessOrEqual(t, e.Distance, 10.0)
		assert.GreaterOrEqual(t, e.Delay, 0.0)
		assert.LessOrEqual(t, e.Delay, 30.0)
		assert.NotEqual(t, vehicle.None, e.RoadClass)
		assert.GreaterOrEqual(t, int(e.From), 1)
		assert.LessOrEqual(t, int(e.To), 15)
	}
}

func TestRandomRoads_Options(t *testing.T) {
	g, err := builder.RandomRoads(6, 20,
		builder.WithSeed(9),
		builder.WithDamageProbability(1),
		builder.WithDistanceRange(3, 3),
		builder.WithDelayRange(0, 0),
		builder.WithRoadClasses(vehicle.Lorry),
	)
	require.NoError(t, err)
	require.NotZero(t, g.EdgeCount())

	for _, e := range g.Edges() {
		assert.True(t, e.Damaged)
		assert.Equal(t, 3.0, e.Distance)
		assert.Zero(t, e.Delay)
		assert.Equal(t, vehicle.Lorry, e.RoadClass)
	}
	assert.Equal(t, g.EdgeCount(), g.Stats().DamagedCount)
}

func TestRandomRoads_Errors(t *testing.T) {
	_, err := builder.RandomRoads(5, 5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.RandomRoads(1, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.RandomRoads(3, 7, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooManyRoads)

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithDamageProbability(1.5) })
	assert.Panics(t, func() { builder.WithDistanceRange(5, 1) })
	assert.Panics(t, func() { builder.WithDelayRange(-1, 1) })
	assert.Panics(t, func() { builder.WithRoadClasses() })
}
