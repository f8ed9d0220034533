package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/internal/config"
	"github.com/katalvlaran/roadnet/roadfile"
)

func run(t *testing.T, input *Input, args ...string) (string, error) {
	t.Helper()
	rootCmd := createRootCommand(context.Background(), input, "test")
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func defaultInput() *Input { return newInput(config.Default()) }

func TestPath_Found(t *testing.T) {
	out, err := run(t, defaultInput(), "path", "0", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Best delivery route for Car:")
	assert.Contains(t, out, "Path: 0 → 1 → 4")
	assert.Contains(t, out, "Total estimated time: 43.0 minutes")
	assert.Contains(t, out, "From 1 to 4:\n  Distance: 18 km\n  Traffic delay: 10 minutes\n")
}

func TestPath_Ineligible(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roads.yaml")
	doc := "roads:\n  - {from: 1, to: 2, distance: 3, delay: 1, damaged: true, class: bike}\n  - {from: 2, to: 3, distance: 3, delay: 1}\n"
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	in := defaultInput()
	in.graphPath = file
	out, err := run(t, in, "path", "--vehicle", "lorry", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Reason: The roads available are not suitable for the Lorry.")
	assert.Contains(t, out, "Nearby roads for reference:\nFrom 1 to 2: Damaged road, Distance: 3 km, Traffic delay: 1 minutes\nFrom 2 to 3: Normal road")

	out, err = run(t, in, "path", "3", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Reason: There is no path connecting intersection 3 to intersection 1.")
}

func TestPath_BadInput(t *testing.T) {
	_, err := run(t, defaultInput(), "path", "--vehicle", "ufo", "0", "4")
	assert.Error(t, err)

	_, err = run(t, defaultInput(), "path", "zero", "4")
	assert.Error(t, err)

	_, err = run(t, defaultInput(), "path", "0")
	assert.Error(t, err)
}

func TestDeliver(t *testing.T) {
	out, err := run(t, defaultInput(), "deliver", "--start", "0", "4", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: 0 → 2 → 4")
	assert.Contains(t, out, "Total estimated time: 48.4 minutes")
	assert.Contains(t, out, "Orderings evaluated: 2")

	in := defaultInput()
	in.exactLimit = 2
	_, err = run(t, in, "deliver", "1", "2", "3")
	assert.Error(t, err)

	out, err = run(t, in, "deliver", "--mode", "heuristic", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "(heuristic)")
}

func TestTour(t *testing.T) {
	out, err := run(t, defaultInput(), "tour")
	require.NoError(t, err)
	assert.Contains(t, out, "Path: 0 → 1 → 2 → 3 → 4 → 0")
	assert.Contains(t, out, "Total estimated time: 118.0 minutes")
	assert.Contains(t, out, "Total distance: 65 km")
}

func TestRoadsAndVehicles(t *testing.T) {
	out, err := run(t, defaultInput(), "roads")
	require.NoError(t, err)
	assert.Contains(t, out, "Road conditions:\nFrom 0 to 1: Undamaged road, Distance: 10 km, Traffic delay: 5 minutes\n")

	out, err = run(t, defaultInput(), "vehicles")
	require.NoError(t, err)
	assert.Contains(t, out, "three_wheeler")
	assert.Contains(t, out, "DAMAGED ROADS")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "city.yaml")

	out, err := run(t, defaultInput(), "generate", "--nodes", "6", "--roads", "12", "--seed", "3", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 6 intersections")

	g, err := roadfile.Load(file)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())

	in := defaultInput()
	in.graphPath = file
	_, err = run(t, in, "roads")
	require.NoError(t, err)
}

func TestMetricsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roadnet.prom")
	_, err := run(t, defaultInput(), "path", "--metrics-file", file, "0", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `roadnet_queries_total{kind="path",outcome="found"} 1`)
}
