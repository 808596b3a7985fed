package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  title: Arcade Room
  width: 1920
  height: 1080
camera:
  speed: 12.5
  sensitivity: 0.25
assets:
  root: ./assets
frameLimit: 144
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Arcade Room", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, float32(12.5), cfg.Camera.Speed)
	assert.Equal(t, float32(0.25), cfg.Camera.Sensitivity)
	assert.Equal(t, "./assets", cfg.Assets.Root)
	assert.Equal(t, float64(144), cfg.FrameLimit)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
window:
  title: Custom Title
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom Title", cfg.Window.Title)
	assert.Equal(t, Default().Window.Width, cfg.Window.Width)
	assert.Equal(t, Default().Camera.Speed, cfg.Camera.Speed)
	assert.Equal(t, Default().Assets.Root, cfg.Assets.Root)
	assert.Zero(t, cfg.FrameLimit)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
