package imaging

import (
	"image"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// sharpen amplifies edges with a 3x3 convolution: the center pixel is
// weighted 9 and each of the eight neighbors -1. The weights sum to one,
// so flat regions pass through unchanged. Border pixels reuse their
// nearest in-bounds neighbors.
func sharpen(img *image.RGBA) *image.RGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := y*out.Stride + x*4
			for c := 0; c < 3; c++ {
				sum := 0
				for dy := -1; dy <= 1; dy++ {
					sy := core.Clamp(y+dy, 0, h-1)
					for dx := -1; dx <= 1; dx++ {
						sx := core.Clamp(x+dx, 0, w-1)
						v := int(img.Pix[sy*img.Stride+sx*4+c])
						if dx == 0 && dy == 0 {
							sum += 9 * v
						} else {
							sum -= v
						}
					}
				}
				out.Pix[o+c] = uint8(core.Clamp(sum, 0, 255))
			}
			out.Pix[o+3] = 255
		}
	}
	return out
}
