package pattern

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

// SoftBlobs composites large, heavily blurred discs and then blurs the
// whole layer once more.
type SoftBlobs struct{}

func (SoftBlobs) Name() string { return "soft_blobs" }

func (SoftBlobs) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	w, h := float64(size.X), float64(size.Y)
	m := minDim(size)
	layer := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))

	blobs := randutil.Between(rng, 6, 16)
	for i := 0; i < blobs; i++ {
		r := randutil.Uniform(rng, m*0.08, m*0.25)
		x := randutil.Uniform(rng, r*0.8, w-r*0.8)
		y := randutil.Uniform(rng, r*0.8, h-r*0.8)
		c := pal.Random(rng)
		a := randutil.Between(rng, 80, 160)

		side := max(1, int(r*2.5))
		half := float64(side) / 2
		dc := gg.NewContext(side, side)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
		dc.DrawEllipse(half, half, half, half)
		dc.Fill()

		blob := imaging.Blur(dc.Image(), r*0.35)
		layer = imaging.Overlay(layer, blob, image.Pt(int(x-half), int(y-half)), 1.0)
	}

	return imaging.Blur(layer, randutil.Uniform(rng, 1.0, 2.5))
}
