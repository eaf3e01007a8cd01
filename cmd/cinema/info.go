package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cinema/internal/config"
	"github.com/vovakirdan/tui-cinema/internal/core"
	"github.com/vovakirdan/tui-cinema/internal/media"
)

var infoCmd = &cobra.Command{
	Use:   "info <video>",
	Short: "Probe a video and show the conversion plan",
	Long: `Probe the video with ffprobe and print its container, duration,
resolution and codec, plus the grid and frame count a playback run
would use in the current terminal.

Examples:
  cinema info clip.mp4
  cinema info clip.mp4 --config ./my-cinema.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	if err := showInfo(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showInfo(video string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if _, err := os.Stat(video); err != nil {
		return fmt.Errorf("cannot find input %s: %w", video, err)
	}
	if err := media.CheckFfprobe(); err != nil {
		return err
	}

	probe, err := media.Probe(context.Background(), video)
	if err != nil {
		return err
	}

	fmt.Printf("Input: %s\n", video)
	fmt.Printf("  Container:  %s\n", probe.Format.FormatLongName)
	fmt.Printf("  Duration:   %.1fs\n", probe.Format.Duration)
	fmt.Printf("  Size:       %d bytes\n", probe.Format.Size)
	if probe.Video != nil {
		fmt.Printf("  Video:      %s, %s, %.2f fps\n", probe.Video.Codec, probe.Resolution(), probe.FrameRate())
	} else {
		fmt.Println("  Video:      no video stream")
	}

	ramp, err := cfg.Ramp()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	vp := core.NewViewport(width, height)
	grid := vp.Grid(cfg.Convert.Width)
	estimated := int(probe.Format.Duration * float64(cfg.Playback.FPS))

	fmt.Println()
	fmt.Println("Conversion plan:")
	fmt.Printf("  Grid:       %dx%d characters\n", grid.Cols, grid.Rows)
	fmt.Printf("  Playback:   %d FPS\n", cfg.Playback.FPS)
	fmt.Printf("  Frames:     ~%d\n", estimated)
	fmt.Printf("  Ramp:       %s (%d glyphs)\n", ramp.Name(), ramp.Len())
	fmt.Printf("  Enhance:    %v\n", cfg.Enhance.Enabled)

	return nil
}
