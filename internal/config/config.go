// Package config provides YAML-based player configuration loading for
// the cinema pipeline.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-cinema/internal/ascii"
	"github.com/vovakirdan/tui-cinema/internal/imaging"
)

// Config contains all configuration for a playback run.
type Config struct {
	Playback  PlaybackConfig  `yaml:"playback"`
	Convert   ConvertConfig   `yaml:"convert"`
	Enhance   EnhanceConfig   `yaml:"enhance"`
	Workspace WorkspaceConfig `yaml:"workspace"`
}

// PlaybackConfig defines the fixed-rate playback parameters.
type PlaybackConfig struct {
	FPS int `yaml:"fps"` // frames per second, also the decoder sampling rate
}

// ConvertConfig defines the glyph conversion parameters.
type ConvertConfig struct {
	Width     int    `yaml:"width"`      // target character grid width
	Workers   int    `yaml:"workers"`    // conversion pool size
	Ramp      string `yaml:"ramp"`       // built-in ramp preset name
	RampChars string `yaml:"ramp_chars"` // literal ramp override, darkest glyph first
}

// EnhanceConfig defines the image enhancement parameters.
type EnhanceConfig struct {
	Enabled   bool    `yaml:"enabled"`
	ClipLimit float64 `yaml:"clip_limit"`
	TileGrid  int     `yaml:"tile_grid"`
	Sharpen   bool    `yaml:"sharpen"`
}

// WorkspaceConfig defines the run's working directories.
type WorkspaceConfig struct {
	FramesDir string `yaml:"frames_dir"` // decoded stills, removed after the run
	CacheDir  string `yaml:"cache_dir"`  // conversion artifacts, left in place
}

// Validate checks for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Playback.FPS < 1 {
		return fmt.Errorf("config: playback.fps must be at least 1, got %d", c.Playback.FPS)
	}
	if c.Convert.Width < 1 {
		return fmt.Errorf("config: convert.width must be at least 1, got %d", c.Convert.Width)
	}
	if c.Convert.Workers < 1 {
		return fmt.Errorf("config: convert.workers must be at least 1, got %d", c.Convert.Workers)
	}
	if c.Enhance.ClipLimit < 1 {
		return fmt.Errorf("config: enhance.clip_limit must be at least 1, got %g", c.Enhance.ClipLimit)
	}
	if c.Enhance.TileGrid < 1 {
		return fmt.Errorf("config: enhance.tile_grid must be at least 1, got %d", c.Enhance.TileGrid)
	}
	if _, err := c.Ramp(); err != nil {
		return err
	}
	if c.Workspace.FramesDir == "" || c.Workspace.CacheDir == "" {
		return fmt.Errorf("config: workspace directories must not be empty")
	}
	return nil
}

// Ramp resolves the configured glyph ramp. A literal ramp_chars override
// wins over the preset name.
func (c *Config) Ramp() (ascii.Ramp, error) {
	if c.Convert.RampChars != "" {
		return ascii.NewRamp("custom", c.Convert.RampChars)
	}
	return ascii.Preset(c.Convert.Ramp)
}

// EnhanceOptions projects the enhancement section onto pipeline options.
func (c *Config) EnhanceOptions() imaging.Options {
	return imaging.Options{
		ClipLimit: c.Enhance.ClipLimit,
		TileGrid:  c.Enhance.TileGrid,
		Sharpen:   c.Enhance.Sharpen,
	}
}
