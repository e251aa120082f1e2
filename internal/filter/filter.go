// Package filter provides the pixel-level operations shared by the
// wallpaper stages: noise fields, linear blending, multiply and the
// contrast / brightness / saturation enhancers.
//
// All functions take and return *image.NRGBA with bounds starting at the
// origin and never modify their inputs.
package filter

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/stat"
)

// ClampByte rounds v and clamps it to [0,255].
func ClampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Lerp interpolates a→b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Luma returns the ITU-R 601 luma of c in [0,255].
func Luma(c color.NRGBA) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// UniformNoise returns an opaque grayscale field where every pixel
// intensity is drawn uniformly from [0,255].
func UniformNoise(size image.Point, rng *rand.Rand) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for i := 0; i < len(img.Pix); i += 4 {
		v := uint8(rng.Intn(256))
		img.Pix[i+0] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	return img
}

// GaussianNoise returns an opaque grayscale field with intensities drawn
// from a normal distribution centered on 128 with the given sigma.
func GaussianNoise(size image.Point, sigma float64, rng *rand.Rand) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for i := 0; i < len(img.Pix); i += 4 {
		v := ClampByte(128 + rng.NormFloat64()*sigma)
		img.Pix[i+0] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
		img.Pix[i+3] = 255
	}
	return img
}

// Blend returns (1-s)·a + s·b for every channel, alpha included.
// a and b must have the same size.
func Blend(a, b *image.NRGBA, s float64) *image.NRGBA {
	out := image.NewNRGBA(a.Rect)
	for i := range out.Pix {
		out.Pix[i] = ClampByte(Lerp(float64(a.Pix[i]), float64(b.Pix[i]), s))
	}
	return out
}

// Multiply returns a·b/255 on the color channels, keeping a's alpha.
func Multiply(a, b *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(a.Rect)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = uint8(int(a.Pix[i+c]) * int(b.Pix[i+c]) / 255)
		}
		out.Pix[i+3] = a.Pix[i+3]
	}
	return out
}

// Brightness scales the color channels by factor.
func Brightness(img *image.NRGBA, factor float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: ClampByte(float64(c.R) * factor),
			G: ClampByte(float64(c.G) * factor),
			B: ClampByte(float64(c.B) * factor),
			A: c.A,
		}
	})
}

// Contrast pushes every channel away from the image's mean luma by factor.
// A factor of 1 leaves the image unchanged.
func Contrast(img *image.NRGBA, factor float64) *image.NRGBA {
	mean := math.Round(MeanLuma(img))
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: ClampByte(Lerp(mean, float64(c.R), factor)),
			G: ClampByte(Lerp(mean, float64(c.G), factor)),
			B: ClampByte(Lerp(mean, float64(c.B), factor)),
			A: c.A,
		}
	})
}

// Saturation pushes every pixel away from its own gray level by factor.
func Saturation(img *image.NRGBA, factor float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		l := math.Round(Luma(c))
		return color.NRGBA{
			R: ClampByte(Lerp(l, float64(c.R), factor)),
			G: ClampByte(Lerp(l, float64(c.G), factor)),
			B: ClampByte(Lerp(l, float64(c.B), factor)),
			A: c.A,
		}
	})
}

// MeanLuma returns the average luma of img.
func MeanLuma(img *image.NRGBA) float64 {
	n := len(img.Pix) / 4
	if n == 0 {
		return 0
	}
	lumas := make([]float64, n)
	for i := 0; i < n; i++ {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		lumas[i] = Luma(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
	}
	return stat.Mean(lumas, nil)
}

// Opaque returns a copy of img with every alpha set to 255, dropping
// transparency without touching color.
func Opaque(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}
