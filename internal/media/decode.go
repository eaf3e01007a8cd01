// Package media drives the external ffmpeg/ffprobe collaborators: frame
// extraction into a working directory, container metadata probing, and
// discovery of the extracted stills.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Sentinel errors surfaced by the decoder preflight.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// framePattern is the numbered name ffmpeg writes stills under. The
// discovery order below relies on the zero padding.
const framePattern = "frame_%04d.png"

// CheckFfmpeg verifies the decoder binary is available.
func CheckFfmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	return nil
}

// CheckFfprobe verifies the prober binary is available.
func CheckFfprobe() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// ExtractOptions describe one extraction run.
type ExtractOptions struct {
	InputPath string
	FramesDir string
	FPS       int
	Width     int // output frame width; height follows the source aspect
}

// BuildExtractArgs constructs the ffmpeg argument slice that samples the
// input into numbered stills at a fixed rate and width.
func BuildExtractArgs(opts ExtractOptions) []string {
	args := make([]string, 0, 16)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	args = append(args, "-loglevel", "error")

	// --- Input ---
	args = append(args, "-i", opts.InputPath)

	// --- Sampling filter: fixed rate, fixed width, source aspect kept ---
	args = append(args, "-vf", fmt.Sprintf("fps=%d,scale=%d:-1:flags=lanczos", opts.FPS, opts.Width))

	// --- Output pattern ---
	args = append(args, filepath.Join(opts.FramesDir, framePattern))

	return args
}

// ExtractFrames runs the decoder. Stderr is captured and folded into the
// returned error so a failing decode explains itself.
func ExtractFrames(ctx context.Context, opts ExtractOptions) error {
	args := BuildExtractArgs(opts)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("media: ffmpeg failed: %w: %s", err, msg)
		}
		return fmt.Errorf("media: ffmpeg failed: %w", err)
	}
	return nil
}
