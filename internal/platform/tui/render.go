package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// statusStyle highlights the playback status line.
var statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// RenderFrame lays out one text frame plus a status line for the given
// viewport. Content is limited to one row less than the viewport, and every
// row is cut to the viewport width so long lines cannot wrap.
func RenderFrame(frame core.TextFrame, status string, vp core.Viewport) string {
	var sb strings.Builder
	sb.Grow(vp.Rows * (vp.Cols + 1))

	contentRows := core.Min(frame.Height(), vp.Rows-1)
	for y := range contentRows {
		sb.WriteString(truncate(frame.Row(y), vp.Cols))
		sb.WriteRune('\n')
	}
	sb.WriteString(statusStyle.Render(truncate(status, vp.Cols)))
	return sb.String()
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
