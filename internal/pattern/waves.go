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

// Waves strokes horizontal sine curves that share amplitude and frequency
// but each have their own phase and color.
type Waves struct{}

func (Waves) Name() string { return "waves" }

func (Waves) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	w, h := float64(size.X), float64(size.Y)

	lines := randutil.Between(rng, 6, 14)
	amp := randutil.Uniform(rng, h*0.02, h*0.08)
	freq := randutil.Uniform(rng, 1.0, 3.5)
	thickness := randutil.Between(rng, 2, 6)

	dc := gg.NewContext(size.X, size.Y)
	dc.SetLineWidth(float64(thickness))
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	// Overshoot both edges so round caps never show inside the canvas.
	margin := size.X / 10
	step := max(2, size.X/300)

	for i := 0; i < lines; i++ {
		phase := randutil.Uniform(rng, 0, 2*math.Pi)
		c := pal.Random(rng)
		a := randutil.Between(rng, 60, 160)
		y0 := math.Trunc(filter.Lerp(h*0.1, h*0.9, float64(i)/(float64(lines-1)+1e-6)))

		dc.NewSubPath()
		for x := -margin; x < size.X+margin; x += step {
			y := y0 + math.Sin(float64(x)/w*2*math.Pi*freq+phase)*amp
			dc.LineTo(float64(x), y)
		}
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
		dc.Stroke()
	}
	return toLayer(dc)
}
