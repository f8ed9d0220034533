package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/tsp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGraph, EnvLogLevel, EnvLogFormat, EnvExactLimit, EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_ExactLimitFollowsPlanner(t *testing.T) {
	assert.Equal(t, tsp.DefaultExactLimit, Default().ExactLimit)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGraph, "city.yaml")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvExactLimit, "5")
	t.Setenv(EnvSeed, "99")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{GraphPath: "city.yaml", LogLevel: "debug", LogFormat: "json", ExactLimit: 5, Seed: 99}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvExactLimit, "many")
	_, err := FromEnv()
	assert.ErrorContains(t, err, EnvExactLimit)

	clearEnv(t)
	t.Setenv(EnvLogFormat, "xml")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even when empty
	require.NoError(t, os.Unsetenv(EnvSeed))
	require.NoError(t, os.Unsetenv(EnvGraph))

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("ROADNET_SEED=7\nROADNET_GRAPH=roads.yaml\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvGraph)
	})

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "roads.yaml", cfg.GraphPath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
