// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"barbell/internal/persist"
	"barbell/internal/render"

	"github.com/joho/godotenv"
)

const (
	// LogFileEnv names a file to receive log output while the TUI runs.
	LogFileEnv = "BARBELL_LOG"
	// ShapeEnv selects the default plate shape ("side" or "disc").
	ShapeEnv = "BARBELL_SHAPE"
)

// Config holds resolved settings. Flags override fields after Load. An empty
// StateDir means ~/.barbell, resolved by Store.
type Config struct {
	StateDir  string
	LogFile   string
	Shape     string
	Ephemeral bool
}

// Load reads the given env files (default ".env") without overriding
// variables already set, then resolves settings. Missing env files are
// ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		StateDir: os.Getenv(persist.StateDirEnv),
		LogFile:  os.Getenv(LogFileEnv),
		Shape:    os.Getenv(ShapeEnv),
	}, nil
}

// PlateShape resolves Shape.
func (c Config) PlateShape() (render.Shape, error) {
	return render.ShapeByName(c.Shape)
}

// Store opens the configured KV: in memory when Ephemeral, else files under
// StateDir.
func (c Config) Store() (persist.KV, error) {
	if c.Ephemeral {
		return persist.NewMemKV(), nil
	}
	dir := c.StateDir
	if dir == "" {
		var err error
		if dir, err = persist.DefaultStateDir(); err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
	}
	return persist.NewFileKV(dir), nil
}
