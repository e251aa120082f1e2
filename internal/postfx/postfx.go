// Package postfx applies the finishing pass to a composited wallpaper:
// film grain, a soft vignette and a final contrast/saturation lift.
package postfx

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/wallgen/internal/background"
	"github.com/AnyUserName/wallgen/internal/filter"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

const (
	grainChance    = 0.9
	vignetteChance = 0.7

	grainContrast = 1.4

	// vignetteBlurPct is the mask blur as a percentage of the short side.
	vignetteBlurPct   = 8
	vignetteLift      = 1.5
	minContrastBoost  = 1.02
	maxContrastBoost  = 1.12
	minSaturateBoost  = 1.02
	maxSaturateBoost  = 1.15
	minGrainAmount    = 0.03
	maxGrainAmount    = 0.08
	minGrainSigma     = 40
	maxGrainSigma     = 90
	minVignetteAmount = 0.08
	maxVignetteAmount = 0.20
)

// Record captures the random draws of one post-processing pass. Zero
// Grain or Vignette means the effect was skipped.
type Record struct {
	Grain      float64 `json:"grain,omitempty"`
	GrainSigma float64 `json:"grain_sigma,omitempty"`
	Vignette   float64 `json:"vignette,omitempty"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`
}

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

// Apply flattens img to opaque and runs the finishing effects. The
// sequence of random draws is fixed, so the output depends only on img
// and the state of rng.
func Apply(img *image.NRGBA, rng *rand.Rand) (*image.NRGBA, Record) {
	var rec Record
	out := filter.Opaque(img)

	if randutil.Chance(rng, grainChance) {
		rec.Grain = randutil.Uniform(rng, minGrainAmount, maxGrainAmount)
		rec.GrainSigma = randutil.Uniform(rng, minGrainSigma, maxGrainSigma)
		out = Grain(out, rec.Grain, rec.GrainSigma, rng)
	}
	if randutil.Chance(rng, vignetteChance) {
		rec.Vignette = randutil.Uniform(rng, minVignetteAmount, maxVignetteAmount)
		out = Vignette(out, rec.Vignette)
	}

	rec.Contrast = randutil.Uniform(rng, minContrastBoost, maxContrastBoost)
	out = filter.Contrast(out, rec.Contrast)
	rec.Saturation = randutil.Uniform(rng, minSaturateBoost, maxSaturateBoost)
	out = filter.Saturation(out, rec.Saturation)
	return out, rec
}

// Grain blends Gaussian monochrome noise into img at the given amount.
func Grain(img *image.NRGBA, amount, sigma float64, rng *rand.Rand) *image.NRGBA {
	noise := filter.GaussianNoise(img.Rect.Size(), sigma, rng)
	noise = filter.Contrast(noise, grainContrast)
	return filter.Blend(img, noise, amount)
}

// VignetteMask returns a radial mask that is white at the center and
// falls off toward black at the corners, blurred and lifted so that only
// the outer ring darkens noticeably.
func VignetteMask(size image.Point) *image.NRGBA {
	mask := background.Radial(size, white, black)
	blur := float64(min(size.X, size.Y)) * vignetteBlurPct / 100
	mask = imaging.Blur(mask, blur)
	return filter.Brightness(mask, vignetteLift)
}

// Vignette multiplies img by VignetteMask and blends the darkened copy
// back in at strength.
func Vignette(img *image.NRGBA, strength float64) *image.NRGBA {
	darkened := filter.Multiply(img, VignetteMask(img.Rect.Size()))
	return filter.Blend(img, darkened, strength)
}
