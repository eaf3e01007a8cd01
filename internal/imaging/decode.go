package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg" // decoder registration
	_ "image/png"
)

// Decode reads the still image at path into an origin-anchored RGBA
// buffer.
func Decode(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot decode %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA normalizes any decoded image to an RGBA buffer anchored at the
// origin, which the rest of the pipeline assumes.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
