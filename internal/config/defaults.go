package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-cinema/internal/ascii"
)

//go:embed defaults/player.yaml
var defaultPlayerYAML []byte

// DefaultConfig returns the built-in player configuration.
func DefaultConfig() Config {
	return Config{
		Playback: PlaybackConfig{
			FPS: 12,
		},
		Convert: ConvertConfig{
			Width:   100,
			Workers: 4,
			Ramp:    ascii.DefaultRampName,
		},
		Enhance: EnhanceConfig{
			Enabled:   true,
			ClipLimit: 3.0,
			TileGrid:  8,
			Sharpen:   true,
		},
		Workspace: WorkspaceConfig{
			FramesDir: "temp_frames",
			CacheDir:  "ascii_cache",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlayerYAML
}
