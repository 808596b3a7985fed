// package config loads the application configuration from a YAML file.
// Missing files and missing fields fall back to defaults so the application
// can always start.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// WindowConfig holds the window creation settings.
type WindowConfig struct {
	// Title is the window title bar text.
	Title string `yaml:"title"`

	// Width is the window client area width in pixels.
	Width int `yaml:"width"`

	// Height is the window client area height in pixels.
	Height int `yaml:"height"`
}

// CameraConfig holds the free-fly camera tuning settings.
type CameraConfig struct {
	// Speed is the initial movement speed in world units per second.
	Speed float32 `yaml:"speed"`

	// Sensitivity is the mouse-look sensitivity multiplier.
	Sensitivity float32 `yaml:"sensitivity"`
}

// AssetConfig holds asset lookup settings.
type AssetConfig struct {
	// Root is the directory texture paths are resolved against.
	Root string `yaml:"root"`
}

// Config is the top-level application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Assets AssetConfig  `yaml:"assets"`

	// FrameLimit caps the render loop in frames per second. 0 = uncapped.
	FrameLimit float64 `yaml:"frameLimit"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "oxy-gl",
			Width:  1500,
			Height: 1200,
		},
		Camera: CameraConfig{
			Speed:       20,
			Sensitivity: 0.1,
		},
		Assets: AssetConfig{
			Root: ".",
		},
	}
}

// Load reads the configuration from the given YAML file.
// A missing file is not an error; defaults are returned. Fields omitted from
// the file are filled with their default values.
//
// Parameters:
//   - path: the YAML file location
//
// Returns:
//   - Config: the loaded configuration with defaults applied
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Window.Title = common.Coalesce(cfg.Window.Title, defaults.Window.Title)
	cfg.Window.Width = common.Coalesce(cfg.Window.Width, defaults.Window.Width)
	cfg.Window.Height = common.Coalesce(cfg.Window.Height, defaults.Window.Height)
	cfg.Camera.Speed = common.Coalesce(cfg.Camera.Speed, defaults.Camera.Speed)
	cfg.Camera.Sensitivity = common.Coalesce(cfg.Camera.Sensitivity, defaults.Camera.Sensitivity)
	cfg.Assets.Root = common.Coalesce(cfg.Assets.Root, defaults.Assets.Root)

	return cfg, nil
}
