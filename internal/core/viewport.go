package core

// Margins kept clear around the drawable area, and the smallest viewport
// the player will render into. Terminals smaller than the floor are
// treated as if they were exactly the floor size.
const (
	ViewportRowMargin = 2
	ViewportColMargin = 4

	MinViewportRows = 24
	MinViewportCols = 80
)

// Viewport is the usable terminal character grid after margin
// reservation. The conversion grid is derived from it once at startup;
// rendering re-derives it on resize for truncation only.
type Viewport struct {
	Cols int
	Rows int
}

// NewViewport derives the usable viewport from raw terminal dimensions.
// The argument order matches term.GetSize: columns first.
func NewViewport(termCols, termRows int) Viewport {
	return Viewport{
		Cols: Max(termCols-ViewportColMargin, MinViewportCols),
		Rows: Max(termRows-ViewportRowMargin, MinViewportRows),
	}
}

// FallbackViewport returns the minimum viewport, used when terminal size
// detection fails.
func FallbackViewport() Viewport {
	return Viewport{Cols: MinViewportCols, Rows: MinViewportRows}
}

// Grid returns the character grid frames are converted to: nine tenths of
// the viewport rows, leaving a band for the status line, and the
// configured width capped at the viewport columns.
func (v Viewport) Grid(width int) GridSize {
	return GridSize{
		Cols: Min(width, v.Cols),
		Rows: v.Rows * 9 / 10,
	}
}

// GridSize is the target character grid of converted frames.
type GridSize struct {
	Cols int
	Rows int
}
