package imaging

import (
	"image"
	"math"
)

// ResizeArea scales a grayscale image to cols x rows by averaging the
// source footprint under each destination cell, with fractional coverage
// at the footprint edges. Averaging the whole footprint avoids the
// aliasing that point sampling produces when shrinking.
func ResizeArea(src *image.Gray, cols, rows int) *image.Gray {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	out := image.NewGray(image.Rect(0, 0, cols, rows))

	srcW, srcH := src.Rect.Dx(), src.Rect.Dy()
	if srcW == 0 || srcH == 0 {
		return out
	}

	scaleX := float64(srcW) / float64(cols)
	scaleY := float64(srcH) / float64(rows)

	for y := 0; y < rows; y++ {
		fy0 := float64(y) * scaleY
		fy1 := fy0 + scaleY
		for x := 0; x < cols; x++ {
			fx0 := float64(x) * scaleX
			fx1 := fx0 + scaleX

			sum, area := 0.0, 0.0
			for sy := int(fy0); sy < srcH && float64(sy) < fy1; sy++ {
				wy := math.Min(float64(sy+1), fy1) - math.Max(float64(sy), fy0)
				if wy <= 0 {
					continue
				}
				for sx := int(fx0); sx < srcW && float64(sx) < fx1; sx++ {
					wx := math.Min(float64(sx+1), fx1) - math.Max(float64(sx), fx0)
					if wx <= 0 {
						continue
					}
					sum += wx * wy * float64(src.Pix[sy*src.Stride+sx])
					area += wx * wy
				}
			}
			if area > 0 {
				out.Pix[y*out.Stride+x] = uint8(sum/area + 0.5)
			}
		}
	}
	return out
}
