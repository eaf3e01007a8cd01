package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cinema/internal/ascii"
	"github.com/vovakirdan/tui-cinema/internal/config"
	"github.com/vovakirdan/tui-cinema/internal/core"
	"github.com/vovakirdan/tui-cinema/internal/media"
	"github.com/vovakirdan/tui-cinema/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <video>",
	Short: "Start the cinema SSH server",
	Long: `Start an SSH server that plays one video to every connection.

The video is decoded once at startup. Each SSH session then converts the
stills to a grid sized for its own terminal, so every viewer gets frames
that fit their window.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cinema/host_key

Examples:
  cinema serve clip.mp4                      # Listen on :23234 with auto-generated key
  cinema serve clip.mp4 --ssh :2222          # Listen on port 2222
  cinema serve clip.mp4 --host-key ./my_key  # Use specific host key

Viewers can connect with:
  ssh localhost -p 23234`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) {
	if err := serveVideo(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serveVideo decodes the input once, then serves per-session conversions
// of the stills until the server shuts down.
func serveVideo(video string) error {
	cfg, err := config.Load(flagConfig)
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

	ws := media.NewWorkspace(cfg.Workspace.FramesDir, cfg.Workspace.CacheDir)
	if err := ws.Prepare(); err != nil {
		return err
	}
	defer func() {
		if err := ws.CleanupFrames(); err != nil {
			logger.Warn("could not remove frame directory", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("extracting frames", "input", video, "fps", cfg.Playback.FPS, "width", cfg.Convert.Width)
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

	convert := func(ctx context.Context, vp core.Viewport) (core.FrameSequence, error) {
		conv := ascii.NewConverter(ascii.Config{
			Ramp:    ramp,
			Grid:    vp.Grid(cfg.Convert.Width),
			Enhance: cfg.Enhance.Enabled,
			Options: cfg.EnhanceOptions(),
		})
		frames := ascii.NewBatch(conv, cfg.Convert.Workers, logger).ConvertAll(ctx, paths)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return frames, nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Video:       video,
		FPS:         cfg.Playback.FPS,
		Convert:     convert,
	})
	if err != nil {
		return fmt.Errorf("cannot start server: %w", err)
	}

	fmt.Printf("Serving %s on %s (%d stills ready)\n", video, server.Addr(), len(paths))
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
