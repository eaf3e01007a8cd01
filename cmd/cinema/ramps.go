package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cinema/internal/ascii"
)

var rampsCmd = &cobra.Command{
	Use:   "ramps",
	Short: "List the built-in glyph ramps",
	Long: `Shows every built-in glyph ramp, darkest glyph first.

Pick one with 'cinema play <video> --ramp <name>' or set a literal ramp
via 'convert.ramp_chars' in the config file.`,
	Run: runRamps,
}

func runRamps(cmd *cobra.Command, args []string) {
	names := ascii.Presets()

	fmt.Println("Available ramps:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Glyphs", "Ramp")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "----")

	// Print ramps
	for _, name := range names {
		ramp, err := ascii.Preset(name)
		if err != nil {
			continue
		}
		marker := ""
		if name == ascii.DefaultRampName {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-6d  %q%s\n", maxNameLen, name, ramp.Len(), ramp.Glyphs(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'cinema play <video> --ramp <name>' to use one.")
}
