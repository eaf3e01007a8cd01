package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cinema/internal/platform/tui"
	"github.com/vovakirdan/tui-cinema/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryVideo string
	flagBrowse       bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent playback runs",
	Long: `Display recent playback runs from the history database, newest first.

Examples:
  cinema history
  cinema history --video clip.mp4
  cinema history --browse
  cinema history --clear
  cinema history --clear --video clip.mp4`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum runs to show")
	historyCmd.Flags().StringVar(&flagHistoryVideo, "video", "", "Only show runs of this input")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete run history instead of showing it")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(flagHistoryVideo); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if flagHistoryVideo == "" {
			fmt.Println("History cleared.")
		} else {
			fmt.Printf("History cleared for %s.\n", flagHistoryVideo)
		}
		return
	}

	var runs []storage.RunRecord
	if flagHistoryVideo != "" {
		runs, err = store.RunsForVideo(flagHistoryVideo, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagBrowse {
		width, height := terminalSize()
		if err := tui.RunHistory(runs, flagHistoryVideo, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(runs)
}

func printRuns(runs []storage.RunRecord) {
	fmt.Println("Playback history")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play a video with 'cinema play <video>' to fill the history.")
		return
	}

	// Calculate the video column width
	maxVideoLen := 5 // "Video" header
	for _, r := range runs {
		if len(r.Video) > maxVideoLen {
			maxVideoLen = len(r.Video)
		}
	}

	// Print header
	fmt.Printf("  %-16s  %-*s  %-9s  %-7s  %-4s  %s\n", "When", maxVideoLen, "Video", "Frames", "Grid", "FPS", "Outcome")
	fmt.Printf("  %-16s  %-*s  %-9s  %-7s  %-4s  %s\n", "----", maxVideoLen, "-----", "------", "----", "---", "-------")

	// Print runs
	for _, r := range runs {
		fmt.Printf("  %-16s  %-*s  %-9s  %-7s  %-4d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			maxVideoLen, r.Video,
			fmt.Sprintf("%d/%d", r.FramesPlayed, r.FramesTotal),
			fmt.Sprintf("%dx%d", r.GridCols, r.GridRows),
			r.FPS,
			r.Outcome,
		)
	}
}
