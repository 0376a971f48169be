package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits applied by Clamp.
const (
	MinSamples   = 1
	MaxSamples   = 1_000_000
	MinImageSize = 64
	MaxImageSize = 4096
	MaxCapAngle  = 180.0
)

var ErrUnknownDistribution = errors.New("unknown distribution")

// PlotConfig holds the settings of the sampler plot tool
type PlotConfig struct {
	OutputDir       string   `yaml:"output_dir"`
	Samples         int      `yaml:"samples"`
	ImageSize       int      `yaml:"image_size"`
	CapAngleDegrees float64  `yaml:"cap_angle_degrees"`
	Distributions   []string `yaml:"distributions"`
	LogLevel        string   `yaml:"log_level"`
}

// Default returns the configuration used when no file is given
func Default() PlotConfig {
	return PlotConfig{
		OutputDir:       "plots",
		Samples:         4000,
		ImageSize:       512,
		CapAngleDegrees: 30,
		Distributions:   append([]string(nil), Distributions...),
		LogLevel:        "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (PlotConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PlotConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlotConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return PlotConfig{}, err
	}
	cfg.Clamp()
	return cfg, nil
}

// Validate rejects distributions the tool cannot sample
func (c *PlotConfig) Validate() error {
	for _, name := range c.Distributions {
		if !IsDistribution(name) {
			return fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
		}
	}
	return nil
}

// Clamp pulls numeric settings back to reasonable values
func (c *PlotConfig) Clamp() {
	c.Samples = clampInt(c.Samples, MinSamples, MaxSamples)
	c.ImageSize = clampInt(c.ImageSize, MinImageSize, MaxImageSize)

	if c.CapAngleDegrees < 0 {
		c.CapAngleDegrees = 0
	}
	if c.CapAngleDegrees > MaxCapAngle {
		c.CapAngleDegrees = MaxCapAngle
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
