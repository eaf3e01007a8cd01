// Package core provides the fundamental types of the conversion and
// playback pipeline. It contains no external dependencies (especially no
// Bubble Tea) to keep frame logic pure and testable.
package core

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TextFrame is one video frame rendered as a grid of shading glyphs.
// Every row has the same character length. Frames are built once by the
// converter and are read-only afterwards.
type TextFrame struct {
	rows []string
}

// NewTextFrame wraps the given rows as a frame. The converter guarantees
// equal row lengths; the frame takes ownership of the slice.
func NewTextFrame(rows []string) TextFrame {
	return TextFrame{rows: rows}
}

// Height returns the number of rows in the frame.
func (f TextFrame) Height() int {
	return len(f.rows)
}

// Width returns the character length of the frame's rows.
func (f TextFrame) Width() int {
	if len(f.rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(f.rows[0])
}

// Row returns the row at y, or an empty string for out-of-bounds rows.
func (f TextFrame) Row(y int) string {
	if y < 0 || y >= len(f.rows) {
		return ""
	}
	return f.rows[y]
}

// String joins all rows with newlines.
func (f TextFrame) String() string {
	return strings.Join(f.rows, "\n")
}

// FrameSequence is an ordered list of frames. The slice index is the
// display order, which matches the original decode order.
type FrameSequence []TextFrame

// Duration returns the wall-clock length of the sequence when played at
// the given frame rate.
func (fs FrameSequence) Duration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(len(fs)) * time.Second / time.Duration(fps)
}
