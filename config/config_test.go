// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/validation"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "./data/stops.json", cfg.Dataset.Path)
	require.Equal(t, 10, cfg.Solver.MaxVertices)
	require.Equal(t, 6060, cfg.HTTP.Port)
	require.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Solver.ClosingEdge)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "salesman.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
dataset:
  path: stops.toml
  directed: true
solver:
  closing_edge: true
  max_vertices: 8
http:
  port: 7070
`), 0o600))
	t.Setenv("SALESMAN_HTTP_PORT", "8080")
	t.Setenv("SALESMAN_LOG_LEVEL", "debug")

	cfg, err := config.Load(file)
	require.NoError(t, err)
	require.Equal(t, "stops.toml", cfg.Dataset.Path)
	require.True(t, cfg.Dataset.Directed)
	require.True(t, cfg.Solver.ClosingEdge)
	require.Equal(t, 8, cfg.Solver.MaxVertices)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SALESMAN_LOG_LEVEL", "loud")

	_, err := config.Load("")
	require.ErrorIs(t, err, validation.ErrInvalid)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
