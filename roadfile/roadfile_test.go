package roadfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/roadfile"
	"github.com/katalvlaran/roadnet/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
nodes: [9]
roads:
  - {from: 0, to: 1, distance: 10, delay: 5, class: car, two_way: true}
  - {from: 1, to: 2, distance: 4, delay: 0, damaged: true, class: Three-Wheeler}
`

func TestDecode(t *testing.T) {
	g, err := roadfile.Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2, 9}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))

	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.True(t, e.Damaged)
	assert.Equal(t, vehicle.ThreeWheeler, e.RoadClass)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "roads:\n  - {from: 0, to: 1, distance: 1, delay: 1, speed: 3}\n",
		"unknown class":  "roads:\n  - {from: 0, to: 1, distance: 1, delay: 1, class: tank}\n",
		"negative delay": "roads:\n  - {from: 0, to: 1, distance: 1, delay: -1}\n",
		"self loop":      "roads:\n  - {from: 2, to: 2, distance: 1, delay: 1}\n",
		"duplicate":      "roads:\n  - {from: 0, to: 1, distance: 1, delay: 1}\n  - {from: 0, to: 1, distance: 2, delay: 1}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := roadfile.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, roadfile.ErrInvalidFile)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	g, err := roadfile.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

func TestEncode_FoldsTwoWayRoads(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, roadfile.Encode(&buf, builder.FixedDemo()))

	doc := roadfile.FromGraph(builder.FixedDemo())
	assert.Len(t, doc.Roads, 10)
	assert.Empty(t, doc.Nodes)
	for _, r := range doc.Roads {
		assert.True(t, r.TwoWay)
		assert.Less(t, r.From, r.To)
		assert.Equal(t, "car", r.Class)
	}
	assert.Contains(t, buf.String(), "two_way: true")
}

func TestSaveLoad(t *testing.T) {
	src, err := builder.RandomRoads(8, 25, builder.WithSeed(4))
	require.NoError(t, err)
	src.AddNode(100)

	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, roadfile.Save(path, src))

	got, err := roadfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Nodes(), got.Nodes())
	assert.Equal(t, src.Edges(), got.Edges())
}

func TestLoad_Missing(t *testing.T) {
	_, err := roadfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
