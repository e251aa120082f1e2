// Package texture adds a faint paper grain so gradients never look
// perfectly flat.
package texture

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/wallgen/internal/filter"
)

const (
	// MinStrength and MaxStrength bound the blend factor the composer draws.
	MinStrength = 0.04
	MaxStrength = 0.12

	grainBlur       = 1.2
	grainContrast   = 1.2
	grainBrightness = 1.05
)

// Paper returns the blurred, slightly lifted monochrome noise field that
// Apply blends in.
func Paper(size image.Point, rng *rand.Rand) *image.NRGBA {
	noise := filter.UniformNoise(size, rng)
	noise = imaging.Blur(noise, grainBlur)
	noise = filter.Contrast(noise, grainContrast)
	return filter.Brightness(noise, grainBrightness)
}

// Apply blends paper grain into base: out = (1-s)·base + s·noise.
// A non-positive strength returns base unchanged.
func Apply(base *image.NRGBA, strength float64, rng *rand.Rand) *image.NRGBA {
	if strength <= 0 {
		return base
	}
	return filter.Blend(base, Paper(base.Rect.Size(), rng), strength)
}
