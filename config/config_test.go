package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebfs/config"
	"github.com/katalvlaran/mazebfs/grid"
)

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvStepDelay, config.EnvDebug, config.EnvLogFile, config.EnvLayoutFile} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStepDelay, cfg.StepDelay)
	assert.False(t, cfg.Debug)
	assert.Equal(t, config.DefaultLogFile, cfg.LogFile)
	assert.Empty(t, cfg.LayoutFile)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.Default().String(), g.String())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvStepDelay, "250ms")
	t.Setenv(config.EnvDebug, "true")
	t.Setenv(config.EnvLogFile, "/tmp/maze.log")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.StepDelay)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/maze.log", cfg.LogFile)
}

// TestLoad_DotEnv checks values are picked up from a .env file but do not
// override variables already set in the environment.
func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAZE_STEP_DELAY=1s\nMAZE_DEBUG=1\n"), 0o600))
	t.Setenv(config.EnvDebug, "false")

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvStepDelay) })
	assert.Equal(t, time.Second, cfg.StepDelay)
	assert.False(t, cfg.Debug, "process env wins over .env")
}

func TestLoad_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	clearEnv(t)
	t.Setenv(config.EnvStepDelay, "soon")
	_, err := config.Load(missing)
	assert.ErrorContains(t, err, config.EnvStepDelay)

	clearEnv(t)
	t.Setenv(config.EnvStepDelay, "-1s")
	_, err = config.Load(missing)
	assert.ErrorContains(t, err, "must not be negative")

	clearEnv(t)
	t.Setenv(config.EnvDebug, "maybe")
	_, err = config.Load(missing)
	assert.ErrorContains(t, err, config.EnvDebug)
}

func TestGrid_LayoutFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#####\n#S.E#\n#####\n\n"), 0o600))

	g, err := config.Config{LayoutFile: path}.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(1, 1), g.Start())
	assert.Equal(t, grid.Pos(1, 3), g.End())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("S?E\n"), 0o600))
	_, err = config.Config{LayoutFile: bad}.Grid()
	assert.ErrorIs(t, err, grid.ErrUnknownGlyph)

	_, err = config.Config{LayoutFile: filepath.Join(dir, "nope.txt")}.Grid()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
