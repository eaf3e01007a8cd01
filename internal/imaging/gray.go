package imaging

import "image"

// Grayscale reduces an RGBA image to single-channel luminance using the
// Rec. 601 weights.
func Grayscale(img *image.RGBA) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			r := int(img.Pix[i])
			g := int(img.Pix[i+1])
			b := int(img.Pix[i+2])
			out.Pix[y*out.Stride+x] = uint8((299*r + 587*g + 114*b + 500) / 1000)
		}
	}
	return out
}
