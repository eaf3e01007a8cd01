package imaging

import (
	"image"
	"math"

	"github.com/vovakirdan/tui-cinema/internal/core"
)

// CIELAB conversion against the D65 white point, with L* rescaled from
// [0,100] to the byte range so histogram work can bin it directly.

const (
	refX = 0.95047
	refZ = 1.08883

	labThreshold = 0.008856 // (6/29)^3
)

// labPlanes is a planar Lab view of an image. The a and b channels stay
// float so the round trip only rounds lightness once.
type labPlanes struct {
	w, h int
	l    []uint8
	a    []float64
	b    []float64
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labThreshold {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(f float64) float64 {
	f3 := f * f * f
	if f3 > labThreshold {
		return f3
	}
	return (f - 16.0/116.0) / 7.787
}

// rgbaToLab converts an origin-anchored RGBA image to planar Lab.
func rgbaToLab(img *image.RGBA) *labPlanes {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	p := &labPlanes{
		w: w,
		h: h,
		l: make([]uint8, w*h),
		a: make([]float64, w*h),
		b: make([]float64, w*h),
	}

	i := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			r := srgbToLinear(float64(row[x*4]) / 255)
			g := srgbToLinear(float64(row[x*4+1]) / 255)
			b := srgbToLinear(float64(row[x*4+2]) / 255)

			fx := labF((0.412453*r + 0.357580*g + 0.180423*b) / refX)
			fy := labF(0.212671*r + 0.715160*g + 0.072169*b)
			fz := labF((0.019334*r + 0.119193*g + 0.950227*b) / refZ)

			lstar := 116*fy - 16
			p.l[i] = uint8(core.ClampF(lstar*255/100+0.5, 0, 255))
			p.a[i] = 500 * (fx - fy)
			p.b[i] = 200 * (fy - fz)
			i++
		}
	}
	return p
}

// toRGBA converts the planes back to a fully opaque RGBA image.
func (p *labPlanes) toRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, p.w, p.h))

	i := 0
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			fy := (float64(p.l[i])*100/255 + 16) / 116
			fx := fy + p.a[i]/500
			fz := fy - p.b[i]/200

			xr := labFInv(fx) * refX
			yr := labFInv(fy)
			zr := labFInv(fz) * refZ

			r := 3.240479*xr - 1.537150*yr - 0.498535*zr
			g := -0.969256*xr + 1.875992*yr + 0.041556*zr
			b := 0.055648*xr - 0.204043*yr + 1.057311*zr

			o := y*out.Stride + x*4
			out.Pix[o] = uint8(core.ClampF(linearToSRGB(r)*255+0.5, 0, 255))
			out.Pix[o+1] = uint8(core.ClampF(linearToSRGB(g)*255+0.5, 0, 255))
			out.Pix[o+2] = uint8(core.ClampF(linearToSRGB(b)*255+0.5, 0, 255))
			out.Pix[o+3] = 255
			i++
		}
	}
	return out
}
