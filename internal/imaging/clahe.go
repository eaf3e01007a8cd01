package imaging

import (
	"math"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// Contrast-limited adaptive histogram equalization over one byte channel.
// The channel is split into a tile grid; each tile gets a clipped,
// equalized lookup table, and every pixel is mapped through a bilinear
// blend of the four nearest tile tables. Clipping the per-tile histogram
// caps how steep any local remapping can get, which keeps flat regions
// from exploding into noise.
func equalizeAdaptive(ch []uint8, w, h, tiles int, clipLimit float64) []uint8 {
	out := make([]uint8, len(ch))
	if w <= 0 || h <= 0 {
		return out
	}
	if tiles < 1 {
		tiles = 1
	}
	if clipLimit < 1 {
		clipLimit = 1
	}

	tileW := (w + tiles - 1) / tiles
	tileH := (h + tiles - 1) / tiles

	luts := buildTileLUTs(ch, w, h, tiles, tileW, tileH, clipLimit)

	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := int(math.Floor(fy))
		wy := fy - float64(ty0)
		ty1 := core.Clamp(ty0+1, 0, tiles-1)
		ty0 = core.Clamp(ty0, 0, tiles-1)

		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := int(math.Floor(fx))
			wx := fx - float64(tx0)
			tx1 := core.Clamp(tx0+1, 0, tiles-1)
			tx0 = core.Clamp(tx0, 0, tiles-1)

			v := ch[y*w+x]
			top := (1-wx)*float64(luts[ty0*tiles+tx0][v]) + wx*float64(luts[ty0*tiles+tx1][v])
			bot := (1-wx)*float64(luts[ty1*tiles+tx0][v]) + wx*float64(luts[ty1*tiles+tx1][v])
			out[y*w+x] = uint8((1-wy)*top + wy*bot + 0.5)
		}
	}
	return out
}

// buildTileLUTs computes one clipped equalization table per tile.
func buildTileLUTs(ch []uint8, w, h, tiles, tileW, tileH int, clipLimit float64) [][256]uint8 {
	luts := make([][256]uint8, tiles*tiles)

	for ty := 0; ty < tiles; ty++ {
		y0 := ty * tileH
		y1 := core.Min(y0+tileH, h)
		for tx := 0; tx < tiles; tx++ {
			x0 := tx * tileW
			x1 := core.Min(x0+tileW, w)
			lut := &luts[ty*tiles+tx]

			area := (x1 - x0) * (y1 - y0)
			if area <= 0 {
				// Degenerate tile on tiny inputs; identity keeps the
				// interpolation math harmless.
				for i := range lut {
					lut[i] = uint8(i)
				}
				continue
			}

			var hist [256]int
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[ch[y*w+x]]++
				}
			}

			// Clip each bin, then hand the excess back evenly.
			limit := core.Max(int(clipLimit*float64(area)/256), 1)
			excess := 0
			for i, c := range hist {
				if c > limit {
					excess += c - limit
					hist[i] = limit
				}
			}
			per := excess / 256
			rem := excess % 256
			for i := range hist {
				hist[i] += per
			}
			if rem > 0 {
				step := core.Max(256/rem, 1)
				for i := 0; i < 256 && rem > 0; i += step {
					hist[i]++
					rem--
				}
			}

			// Cumulative histogram becomes the remapping table.
			scale := 255.0 / float64(area)
			cum := 0
			for i := 0; i < 256; i++ {
				cum += hist[i]
				lut[i] = uint8(core.ClampF(float64(cum)*scale+0.5, 0, 255))
			}
		}
	}
	return luts
}
