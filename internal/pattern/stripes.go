package pattern

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

// Stripes draws evenly spaced vertical bars on an oversized square canvas,
// rotates it by 10°–80° and crops the center, which yields diagonal
// stripes that cover the whole target.
type Stripes struct{}

func (Stripes) Name() string { return "stripes" }

func (Stripes) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	m := minDim(size)

	angle := randutil.Uniform(rng, 10, 80)
	spacing := randutil.Between(rng, percentOf(m, 2, 2), percentOf(m, 6, 2))
	thickness := randutil.Between(rng, max(2, spacing/4), spacing)
	c := pal.Random(rng)
	a := randutil.Between(rng, 40, 110)

	// The square must cover the target at any rotation.
	diag := int(math.Hypot(float64(size.X), float64(size.Y))) + 1
	dc := gg.NewContext(diag, diag)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
	for x := 0; x < diag+spacing; x += spacing {
		dc.DrawRectangle(float64(x), 0, float64(thickness), float64(diag))
	}
	dc.Fill()

	rotated := imaging.Rotate(dc.Image(), angle, color.Transparent)
	return imaging.CropCenter(rotated, size.X, size.Y)
}
