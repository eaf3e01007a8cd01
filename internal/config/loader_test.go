package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cinema.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := writeConfigFile(t, "playback:\n  fps: 24\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Playback.FPS != 24 {
		t.Errorf("Playback.FPS = %d, expected 24", cfg.Playback.FPS)
	}
	// Keys the file does not name keep their built-in values.
	if cfg.Convert.Width != 100 {
		t.Errorf("Convert.Width = %d, expected 100", cfg.Convert.Width)
	}
	if cfg.Convert.Workers != 4 {
		t.Errorf("Convert.Workers = %d, expected 4", cfg.Convert.Workers)
	}
	if !cfg.Enhance.Enabled {
		t.Error("Enhance.Enabled = false, expected true")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
}

func TestLoadCustomPathUnparseable(t *testing.T) {
	path := writeConfigFile(t, "playback: [not a mapping")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with unparseable YAML should fail")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("error = %q, expected a parse failure", err)
	}
}

func TestLoadCustomPathRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"zero fps", "playback:\n  fps: 0\n"},
		{"negative width", "convert:\n  width: -10\n"},
		{"zero workers", "convert:\n  workers: 0\n"},
		{"unknown ramp", "convert:\n  ramp: nope\n"},
		{"single glyph ramp", "convert:\n  ramp_chars: \"@\"\n"},
		{"clip limit below one", "enhance:\n  clip_limit: 0.5\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.contents)
			if _, err := Load(path); err == nil {
				t.Errorf("Load() accepted %q", tc.contents)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}

	ramp, err := cfg.Ramp()
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	if ramp.Name() != "detailed" {
		t.Errorf("Ramp().Name() = %q, expected %q", ramp.Name(), "detailed")
	}
}

func TestDefaultYAMLMatchesDefaultConfig(t *testing.T) {
	path := writeConfigFile(t, string(DefaultYAML()))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestRampCharsOverridesPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Convert.RampChars = "#. "

	ramp, err := cfg.Ramp()
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	if ramp.Name() != "custom" {
		t.Errorf("Ramp().Name() = %q, expected %q", ramp.Name(), "custom")
	}
	if ramp.Len() != 3 {
		t.Errorf("Ramp().Len() = %d, expected 3", ramp.Len())
	}
}

func TestEnhanceOptionsProjection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enhance.ClipLimit = 2.5
	cfg.Enhance.TileGrid = 4
	cfg.Enhance.Sharpen = false

	opts := cfg.EnhanceOptions()
	if opts.ClipLimit != 2.5 {
		t.Errorf("ClipLimit = %g, expected 2.5", opts.ClipLimit)
	}
	if opts.TileGrid != 4 {
		t.Errorf("TileGrid = %d, expected 4", opts.TileGrid)
	}
	if opts.Sharpen {
		t.Error("Sharpen = true, expected false")
	}
}
