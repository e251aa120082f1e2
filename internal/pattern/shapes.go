package pattern

import (
	"image"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/AnyUserName/wallgen/internal/filter"
	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

// ScatterCircles scatters translucent discs, letting them spill over the
// canvas edges.
type ScatterCircles struct{}

func (ScatterCircles) Name() string { return "scatter_circles" }

func (ScatterCircles) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	w, h := float64(size.X), float64(size.Y)
	m := minDim(size)
	dc := gg.NewContext(size.X, size.Y)

	n := randutil.Between(rng, 120, 260)
	for i := 0; i < n; i++ {
		r := randutil.Uniform(rng, m*0.005, m*0.08)
		x := randutil.Uniform(rng, -r, w+r)
		y := randutil.Uniform(rng, -r, h+r)
		c := pal.Random(rng)
		a := randutil.Between(rng, 40, 140)

		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}
	return toLayer(dc)
}

// Concentric strokes rings around the canvas center, from 5% of the half
// diagonal out to the corners.
type Concentric struct{}

func (Concentric) Name() string { return "concentric" }

func (Concentric) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	w, h := float64(size.X), float64(size.Y)
	cx, cy := w/2, h/2
	maxR := math.Hypot(w, h) / 2
	dc := gg.NewContext(size.X, size.Y)

	rings := randutil.Between(rng, 8, 20)
	for i := 0; i < rings; i++ {
		t := float64(i) / (float64(rings-1) + 1e-6)
		r := filter.Lerp(maxR*0.05, maxR, t)
		c := pal.Random(rng)
		a := randutil.Between(rng, 30, 120)
		thick := randutil.Uniform(rng, maxR*0.005, maxR*0.03)

		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
		dc.SetLineWidth(math.Max(1, math.Floor(thick)))
		dc.DrawCircle(cx, cy, r)
		dc.Stroke()
	}
	return toLayer(dc)
}

// Dots lays out a brick grid of small dots: odd rows shift by half the
// spacing.
type Dots struct{}

func (Dots) Name() string { return "dots" }

func (Dots) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	m := minDim(size)
	dc := gg.NewContext(size.X, size.Y)

	spacing := randutil.Between(rng, percentOf(m, 2, 2), percentOf(m, 5, 2))
	r := float64(max(1, spacing/4))

	for row, y := 0, 0; y < size.Y+spacing; row, y = row+1, y+spacing {
		offset := 0
		if row%2 == 1 {
			offset = spacing / 2
		}
		for x := offset; x < size.X+spacing; x += spacing {
			c := pal.Random(rng)
			a := randutil.Between(rng, 40, 140)

			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
			dc.DrawCircle(float64(x), float64(y), r)
			dc.Fill()
		}
	}
	return toLayer(dc)
}
