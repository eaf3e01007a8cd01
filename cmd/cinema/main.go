// cinema plays videos as ASCII art in the terminal.
//
// Usage:
//
//	cinema play <video>      - Play a video in the terminal
//	cinema info <video>      - Probe a video and show the conversion plan
//	cinema ramps             - List the built-in glyph ramps
//	cinema history           - Show recent playback runs
//	cinema serve <video>     - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Path to the run history database (default: ~/.cinema/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cinema/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cinema",
	Short: "Cinema - Watch videos as ASCII art in your terminal",
	Long: `Cinema decodes a video with ffmpeg, converts every frame to ASCII art
sized for your terminal, and plays the result at a fixed frame rate.

Available commands:
  play     - Play a video in the terminal
  info     - Probe a video and show the conversion plan
  ramps    - List the built-in glyph ramps
  history  - Show recent playback runs
  serve    - Start SSH server for remote viewing

Examples:
  cinema play clip.mp4
  cinema play clip.mp4 --fps 24 --ramp blocks
  cinema info clip.mp4
  cinema history --browse
  cinema serve clip.mp4 --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(rampsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
