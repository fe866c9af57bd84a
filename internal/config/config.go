package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable settings for the offline animation renderer.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Frames      int        `json:"frames"`
	Format      string     `json:"format"`
	Supersample int        `json:"supersample"`
	Workers     int        `json:"workers"`
	FOV         float64    `json:"fov"`
	Near        float64    `json:"near"`
	Far         float64    `json:"far"`
	Step        [3]float64 `json:"step"` // per-frame rotation increment (pitch, yaw, roll)
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Frames <= 0 {
		c.Frames = 100
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV <= 0 {
		c.FOV = 0.78
	}
	if c.Near <= 0 {
		c.Near = 0.01
	}
	if c.Far <= 0 {
		c.Far = 1.0
	}
	if c.Step == ([3]float64{}) {
		c.Step = [3]float64{0.01, 0.01, 0}
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Width     int
	Height    int
	Frames    int
	Workers   int
}
