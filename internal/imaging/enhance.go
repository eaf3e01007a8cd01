// Package imaging implements the pixel pipeline that prepares decoded
// stills for glyph mapping: local contrast normalization on the lightness
// channel, edge sharpening, grayscale reduction, and area-average
// resizing. Everything operates on stdlib image buffers.
package imaging

import "image"

// Options control the enhancement pipeline.
type Options struct {
	ClipLimit float64 // contrast clip limit for local equalization
	TileGrid  int     // tiles per axis for local equalization
	Sharpen   bool    // run the edge sharpening pass
}

// DefaultOptions returns the enhancement settings tuned for glyph output.
func DefaultOptions() Options {
	return Options{
		ClipLimit: 3.0,
		TileGrid:  8,
		Sharpen:   true,
	}
}

// Enhance normalizes local contrast and sharpens edges. The image is
// moved into a lightness/chrominance space so equalization touches only
// the lightness channel; chrominance survives the round trip untouched.
func Enhance(img *image.RGBA, opts Options) *image.RGBA {
	planes := rgbaToLab(img)
	planes.l = equalizeAdaptive(planes.l, planes.w, planes.h, opts.TileGrid, opts.ClipLimit)
	out := planes.toRGBA()
	if opts.Sharpen {
		out = sharpen(out)
	}
	return out
}
