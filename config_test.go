package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 1e-6, cfg.Solver.Tolerance)
	assert.Equal(t, 1000, cfg.Solver.MaxIterations)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Empty(t, cfg.Fluids)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, "satcalc.yaml", `
fluids: refrigerants.csv
solver:
  tolerance: 1.0e-9
batch:
  workers: 16
  metrics_file: batch.prom
verbose: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "refrigerants.csv", cfg.Fluids)
	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.Equal(t, 1000, cfg.Solver.MaxIterations, "unset keys keep their defaults")
	assert.Equal(t, 16, cfg.Batch.Workers)
	assert.Equal(t, "batch.prom", cfg.Batch.MetricsFile)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "solver:\n  tolerence: 1e-6\n",
		"zero tolerance":    "solver:\n  tolerance: 0\n",
		"tolerance too big": "solver:\n  tolerance: 2\n",
		"no iterations":     "solver:\n  max_iterations: 0\n",
		"negative workers":  "batch:\n  workers: -1\n",
		"too many workers":  "batch:\n  workers: 5000\n",
		"malformed yaml":    "solver: [1, 2\n",
		"wrong type":        "batch:\n  workers: many\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "bad.yaml", content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
