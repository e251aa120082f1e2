package pattern

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

// meshJitter is the largest corner displacement as a fraction of the cell.
const meshJitter = 0.4

// Triangles splits a jittered grid into two triangles per cell, fills
// each with a translucent palette color and softens the seams with a
// light blur.
type Triangles struct{}

func (Triangles) Name() string { return "triangles" }

func (Triangles) Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA {
	gx := randutil.Between(rng, 6, 14)
	gy := randutil.Between(rng, 10, 20)
	sx := float64(size.X) / float64(gx)
	sy := float64(size.Y) / float64(gy)

	points := make([][]gg.Point, gy+1)
	for iy := range points {
		row := make([]gg.Point, gx+1)
		for ix := range row {
			jx := randutil.Uniform(rng, -meshJitter, meshJitter) * sx
			jy := randutil.Uniform(rng, -meshJitter, meshJitter) * sy
			row[ix] = gg.Point{X: float64(ix)*sx + jx, Y: float64(iy)*sy + jy}
		}
		points[iy] = row
	}

	dc := gg.NewContext(size.X, size.Y)
	for iy := 0; iy < gy; iy++ {
		for ix := 0; ix < gx; ix++ {
			p00 := points[iy][ix]
			p10 := points[iy][ix+1]
			p01 := points[iy+1][ix]
			p11 := points[iy+1][ix+1]
			for _, tri := range [2][3]gg.Point{{p00, p10, p11}, {p00, p01, p11}} {
				c := pal.Random(rng)
				a := randutil.Between(rng, 40, 120)

				dc.SetRGBA255(int(c.R), int(c.G), int(c.B), a)
				dc.MoveTo(tri[0].X, tri[0].Y)
				dc.LineTo(tri[1].X, tri[1].Y)
				dc.LineTo(tri[2].X, tri[2].Y)
				dc.ClosePath()
				dc.Fill()
			}
		}
	}

	return imaging.Blur(toLayer(dc), randutil.Uniform(rng, 0.5, 1.8))
}
