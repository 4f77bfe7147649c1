package config

import (
	"os"
	"path/filepath"
	"testing"

	"barbell/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(persist.StateDirEnv, dir)
	t.Setenv(LogFileEnv, "/tmp/barbell.log")
	t.Setenv(ShapeEnv, "disc")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, "/tmp/barbell.log", cfg.LogFile)
	shape, err := cfg.PlateShape()
	require.NoError(t, err)
	assert.Equal(t, "disc", shape.Name())
}

func TestLoad_EnvFileSeedsUnsetVariables(t *testing.T) {
	stateDir := t.TempDir()
	envFile := filepath.Join(t.TempDir(), "barbell.env")
	require.NoError(t, os.WriteFile(envFile, []byte("BARBELL_STATE_DIR="+stateDir+"\nBARBELL_SHAPE=disc\n"), 0o644))
	// Registered with t.Setenv so the values godotenv sets are restored.
	t.Setenv(persist.StateDirEnv, "")
	os.Unsetenv(persist.StateDirEnv)
	t.Setenv(ShapeEnv, "side")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, stateDir, cfg.StateDir)
	assert.Equal(t, "side", cfg.Shape, "existing variables win")
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(envFile, []byte("BARBELL_SHAPE='disc\n"), 0o644))

	_, err := Load(envFile)
	assert.Error(t, err)
}

func TestConfig_Store(t *testing.T) {
	dir := t.TempDir()
	kv, err := Config{StateDir: dir}.Store()
	require.NoError(t, err)
	fileKV, ok := kv.(*persist.FileKV)
	require.True(t, ok)
	assert.Equal(t, dir, fileKV.Dir())

	kv, err = Config{Ephemeral: true}.Store()
	require.NoError(t, err)
	_, ok = kv.(*persist.MemKV)
	assert.True(t, ok)
}

func TestConfig_StateDirWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv(persist.StateDirEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err, "home is only needed for the default state dir")
	assert.Empty(t, cfg.StateDir)

	_, err = cfg.Store()
	assert.Error(t, err)

	cfg.StateDir = t.TempDir()
	_, err = cfg.Store()
	assert.NoError(t, err)
}

func TestConfig_UnknownShape(t *testing.T) {
	_, err := Config{Shape: "triangle"}.PlateShape()
	assert.Error(t, err)
}
