package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cinema/internal/ascii"
	"github.com/vovakirdan/tui-cinema/internal/config"
	"github.com/vovakirdan/tui-cinema/internal/core"
	"github.com/vovakirdan/tui-cinema/internal/media"
	"github.com/vovakirdan/tui-cinema/internal/platform/tui"
	"github.com/vovakirdan/tui-cinema/internal/storage"
)

var (
	flagFPS        int
	flagWidth      int
	flagWorkers    int
	flagRamp       string
	flagNoEnhance  bool
	flagKeepFrames bool
)

var playCmd = &cobra.Command{
	Use:   "play <video>",
	Short: "Play a video in the terminal",
	Long: `Decode the video with ffmpeg, convert every frame to ASCII art sized
for the current terminal, and play the result at a fixed frame rate.

Controls:
  Q/Ctrl+C   - Quit

Examples:
  cinema play clip.mp4
  cinema play clip.mp4 --fps 24
  cinema play clip.mp4 --ramp blocks --no-enhance
  cinema play clip.mp4 --config ./my-cinema.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 12, "Playback and sampling rate (frames per second)")
	playCmd.Flags().IntVar(&flagWidth, "width", 100, "Character grid width cap")
	playCmd.Flags().IntVar(&flagWorkers, "workers", 4, "Conversion worker count")
	playCmd.Flags().StringVar(&flagRamp, "ramp", ascii.DefaultRampName, "Glyph ramp preset")
	playCmd.Flags().BoolVar(&flagNoEnhance, "no-enhance", false, "Skip contrast enhancement and sharpening")
	playCmd.Flags().BoolVar(&flagKeepFrames, "keep-frames", false, "Keep the extracted stills after the run")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := playVideo(cmd, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playVideo runs the whole pipeline: decode, convert, play, record.
// It returns nil for every outcome the viewer caused (finished, quit,
// interrupted) and an error for pipeline failures.
func playVideo(cmd *cobra.Command, video string) error {
	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(video); err != nil {
		return fmt.Errorf("cannot find input %s: %w", video, err)
	}
	if err := media.CheckFfmpeg(); err != nil {
		return err
	}

	ramp, err := cfg.Ramp()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cinema"})

	width, height := terminalSize()
	vp := core.NewViewport(width, height)
	grid := vp.Grid(cfg.Convert.Width)

	ws := media.NewWorkspace(cfg.Workspace.FramesDir, cfg.Workspace.CacheDir)
	if err := ws.Prepare(); err != nil {
		return err
	}
	defer func() {
		if flagKeepFrames {
			return
		}
		if err := ws.CleanupFrames(); err != nil {
			logger.Warn("could not remove frame directory", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if probe, probeErr := media.Probe(ctx, video); probeErr == nil {
		logger.Info("input",
			"container", probe.Format.FormatName,
			"duration", fmt.Sprintf("%.1fs", probe.Format.Duration),
			"resolution", probe.Resolution(),
			"fps", fmt.Sprintf("%.2f", probe.FrameRate()),
		)
	} else {
		logger.Debug("probe failed", "error", probeErr)
	}

	logger.Info("extracting frames", "fps", cfg.Playback.FPS, "width", cfg.Convert.Width)
	extractErr := media.ExtractFrames(ctx, media.ExtractOptions{
		InputPath: video,
		FramesDir: ws.FramesDir,
		FPS:       cfg.Playback.FPS,
		Width:     cfg.Convert.Width,
	})
	if ctx.Err() != nil {
		fmt.Println("Interrupted.")
		return nil
	}
	if extractErr != nil {
		return extractErr
	}

	paths, err := media.FrameFiles(ws.FramesDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("decoder produced no frames for %s", video)
	}

	logger.Info("converting frames",
		"count", len(paths),
		"grid", fmt.Sprintf("%dx%d", grid.Cols, grid.Rows),
		"workers", cfg.Convert.Workers,
	)
	conv := ascii.NewConverter(ascii.Config{
		Ramp:    ramp,
		Grid:    grid,
		Enhance: cfg.Enhance.Enabled,
		Options: cfg.EnhanceOptions(),
	})
	frames := ascii.NewBatch(conv, cfg.Convert.Workers, logger).ConvertAll(ctx, paths)
	if ctx.Err() != nil {
		fmt.Println("Interrupted.")
		return nil
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames could be converted from %s", video)
	}
	if dropped := len(paths) - len(frames); dropped > 0 {
		logger.Warn("dropped frames", "count", dropped)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Playback owns interrupt handling from here.
	stop()

	player, runErr := tui.RunPlayer(frames, store, vp, cfg.Playback.FPS, video)
	if runErr != nil {
		if errors.Is(runErr, tea.ErrInterrupted) {
			recordInterrupted(store, player, video, cfg.Playback.FPS, grid)
			fmt.Println("Interrupted.")
			return nil
		}
		return fmt.Errorf("playback failed: %w", runErr)
	}

	switch player.Outcome() {
	case tui.OutcomeExhausted:
		fmt.Printf("Finished %s: %d frames at %d FPS.\n", video, player.FramesTotal(), cfg.Playback.FPS)
	case tui.OutcomeQuit:
		fmt.Printf("Stopped at frame %d/%d.\n", player.FramesPlayed(), player.FramesTotal())
	}
	return nil
}

// loadPlayConfig loads the configuration and applies flag overrides.
func loadPlayConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Playback.FPS = flagFPS
	}
	if flags.Changed("width") {
		cfg.Convert.Width = flagWidth
	}
	if flags.Changed("workers") {
		cfg.Convert.Workers = flagWorkers
	}
	if flags.Changed("ramp") {
		// A preset picked on the command line beats a literal override
		// from the config file.
		cfg.Convert.Ramp = flagRamp
		cfg.Convert.RampChars = ""
	}
	if flagNoEnhance {
		cfg.Enhance.Enabled = false
	}

	return cfg, cfg.Validate()
}

// recordInterrupted saves a run that ended by signal, where the player
// model never got to record it.
func recordInterrupted(store *storage.Store, player tui.PlayerModel, video string, fps int, grid core.GridSize) {
	if store == nil || player.FramesTotal() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	store.SaveRun(storage.RunRecord{
		Video:        video,
		FramesTotal:  player.FramesTotal(),
		FramesPlayed: player.FramesPlayed(),
		FPS:          fps,
		GridCols:     grid.Cols,
		GridRows:     grid.Rows,
		Outcome:      player.Outcome().String(),
	})
}

// terminalSize returns the terminal dimensions, or sensible defaults when
// size detection fails.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
