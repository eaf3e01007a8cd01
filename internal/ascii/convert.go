package ascii

import (
	"strings"

	"github.com/vovakirdan/tui-cinema/internal/core"
	"github.com/vovakirdan/tui-cinema/internal/imaging"
)

// Config fixes the conversion parameters for one run. The grid is derived
// from the viewport once at startup and shared by every frame.
type Config struct {
	Ramp    Ramp
	Grid    core.GridSize
	Enhance bool            // run the enhancement pipeline before mapping
	Options imaging.Options // enhancement settings when enabled
}

// Converter renders decoded stills into glyph frames at a fixed grid.
type Converter struct {
	cfg Config
}

// NewConverter creates a converter for the given run parameters. Grid
// dimensions are floored at one character to line up with the resampler.
func NewConverter(cfg Config) *Converter {
	cfg.Grid.Cols = core.Max(cfg.Grid.Cols, 1)
	cfg.Grid.Rows = core.Max(cfg.Grid.Rows, 1)
	return &Converter{cfg: cfg}
}

// Grid returns the character grid frames are rendered at.
func (c *Converter) Grid() core.GridSize {
	return c.cfg.Grid
}

// Convert loads the still at path and renders it as a glyph frame:
// enhance, reduce to luminance, resize to the grid, then map every pixel
// through the ramp. Errors mean the frame is unusable; the batch layer
// drops such frames instead of failing the run.
func (c *Converter) Convert(path string) (core.TextFrame, error) {
	img, err := imaging.Decode(path)
	if err != nil {
		return core.TextFrame{}, err
	}
	if c.cfg.Enhance {
		img = imaging.Enhance(img, c.cfg.Options)
	}

	gray := imaging.Grayscale(img)
	gray = imaging.ResizeArea(gray, c.cfg.Grid.Cols, c.cfg.Grid.Rows)

	rows := make([]string, c.cfg.Grid.Rows)
	var sb strings.Builder
	for y := 0; y < c.cfg.Grid.Rows; y++ {
		sb.Reset()
		sb.Grow(c.cfg.Grid.Cols)
		for x := 0; x < c.cfg.Grid.Cols; x++ {
			sb.WriteRune(c.cfg.Ramp.Map(int(gray.Pix[y*gray.Stride+x])))
		}
		rows[y] = sb.String()
	}
	return core.NewTextFrame(rows), nil
}
