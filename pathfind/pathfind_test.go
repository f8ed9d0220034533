package pathfind_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/pathfind"
	"github.com/katalvlaran/roadnet/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_DemoCar(t *testing.T) {
	res, err := pathfind.FindConstrainedPath(builder.FixedDemo(), "car", 0, 4)
	require.NoError(t, err)

	require.True(t, res.Found())
	assert.Equal(t, []core.NodeID{0, 1, 4}, res.Nodes)
	assert.Equal(t, 43.0, res.TotalTime)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, pathfind.Step{
		From: 0, To: 1, Distance: 10, Delay: 5,
		RoadClass: vehicle.Car, Selected: vehicle.Car, Time: 15,
	}, res.Steps[0])
	assert.Equal(t, 28.0, res.Steps[1].Time)
}

func TestFind_TrivialPath(t *testing.T) {
	res, err := pathfind.FindConstrainedPath(builder.FixedDemo(), "lorry", 3, 3)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{3}, res.Nodes)
	assert.Zero(t, res.TotalTime)
	assert.Empty(t, res.Steps)
	assert.Equal(t, pathfind.FailureNone, res.Failure)
}

// damagedBridge: 1→2 is the only way across and it is damaged.
func damagedBridge(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithNodes(9))
	require.NoError(t, g.AddEdge(1, 2, 4, 2, core.WithDamaged(), core.WithRoadClass(vehicle.Lorry)))
	require.NoError(t, g.AddEdge(2, 3, 1, 1))

	return g
}

func TestFind_IneligibleVersusNoPath(t *testing.T) {
	g := damagedBridge(t)

	res, err := pathfind.FindConstrainedPath(g, "car", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, pathfind.FailureIneligible, res.Failure)
	assert.Equal(t, "no eligible road for this vehicle class", res.Failure.Reason())
	assert.Empty(t, res.Nodes)
	assert.True(t, math.IsInf(res.TotalTime, 1))

	res, err = pathfind.FindConstrainedPath(g, "car", 1, 9)
	require.NoError(t, err)
	assert.Equal(t, pathfind.FailureNoPath, res.Failure)
	assert.Equal(t, "no path connects the nodes", res.Failure.Reason())

	// topology failure is independent of the vehicle
	res, err = pathfind.FindConstrainedPath(g, "bike", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, pathfind.FailureNoPath, res.Failure)
}

func TestFind_SelectedClassSetsPenalty(t *testing.T) {
	g := damagedBridge(t)

	res, err := pathfind.FindConstrainedPath(g, "bike", 1, 3)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []core.NodeID{1, 2, 3}, res.Nodes)
	// 4+2+10*0.5 then 1+1
	assert.Equal(t, 13.0, res.TotalTime)
	assert.Equal(t, vehicle.Lorry, res.Steps[0].RoadClass)
	assert.Equal(t, vehicle.Bike, res.Steps[0].Selected)
	assert.True(t, res.Steps[0].Damaged)

	res, err = pathfind.FindConstrainedPath(g, "three_wheeler", 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.TotalTime, 1e-9)
}

func TestFind_DamagedDetour(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 0, core.WithDamaged()))
	require.NoError(t, g.AddEdge(1, 3, 4, 0))
	require.NoError(t, g.AddEdge(3, 2, 4, 0))

	// car must detour around the damaged shortcut
	res, err := pathfind.FindConstrainedPath(g, "car", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 3, 2}, res.Nodes)
	assert.Equal(t, 8.0, res.TotalTime)

	// bike takes it: 1 + 10*0.5 = 6
	res, err = pathfind.FindConstrainedPath(g, "bike", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, res.Nodes)
	assert.Equal(t, 6.0, res.TotalTime)
}

func TestFind_InvalidInput(t *testing.T) {
	g := builder.FixedDemo()

	_, err := pathfind.FindConstrainedPath(g, "hovercraft", 0, 4)
	assert.ErrorIs(t, err, vehicle.ErrUnknownClass)
	var unknown *vehicle.UnknownClassError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hovercraft", unknown.Name)

	_, err = pathfind.FindConstrainedPath(g, "car", 0, 42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = pathfind.FindConstrainedPath(nil, "car", 0, 4)
	assert.ErrorIs(t, err, pathfind.ErrNilGraph)
}

func TestFind_Idempotent(t *testing.T) {
	g, err := builder.RandomRoads(12, 40, builder.WithSeed(3))
	require.NoError(t, err)
	car, err := vehicle.Lookup("car")
	require.NoError(t, err)

	for _, start := range g.Nodes() {
		for _, end := range g.Nodes() {
			first, err := pathfind.Find(g, car, start, end)
			require.NoError(t, err)
			second, err := pathfind.Find(g, car, start, end)
			require.NoError(t, err)
			assert.Equal(t, first, second)

			if first.Found() {
				assert.Len(t, first.Steps, len(first.Nodes)-1)
				for _, s := range first.Steps {
					assert.False(t, s.Damaged, "car never uses damaged roads")
				}
			} else {
				assert.Empty(t, first.Nodes)
				assert.True(t, math.IsInf(first.TotalTime, 1))
			}
		}
	}
}

func TestFind_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := builder.FixedDemo()

	_, err := pathfind.FindConstrainedPath(g, "car", 0, 4, pathfind.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := pathfind.FindConstrainedPath(g, "car", 2, 2, pathfind.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2}, res.Nodes)
}

// TestFind_Concurrent queries one graph from many goroutines and compares
// every answer with a serial run.
func TestFind_Concurrent(t *testing.T) {
	g, err := builder.RandomRoads(40, 160, builder.WithSeed(9))
	require.NoError(t, err)

	type query struct {
		name       string
		start, end core.NodeID
	}
	var queries []query
	for _, name := range []string{"car", "bike", "lorry"} {
		for start := core.NodeID(1); start <= 40; start += 7 {
			for end := core.NodeID(2); end <= 40; end += 5 {
				queries = append(queries, query{name, start, end})
			}
		}
	}
	want := make([]pathfind.Result, len(queries))
	for i, q := range queries {
		want[i], err = pathfind.FindConstrainedPath(g, q.name, q.start, q.end)
		require.NoError(t, err)
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			for i := range queries {
				k := (i + offset) % len(queries)
				q := queries[k]
				got, err := pathfind.FindConstrainedPath(g, q.name, q.start, q.end)
				assert.NoError(t, err)
				assert.Equal(t, want[k], got)
			}
		}(w)
	}
	wg.Wait()
}
