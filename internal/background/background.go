// Package background renders the gradient every wallpaper starts from.
//
// Both gradients are defined by a per-pixel scalar field t in [0,1]; the
// pixel color is the per-channel interpolation between two colors by t.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/AnyUserName/wallgen/internal/filter"
	"github.com/AnyUserName/wallgen/internal/palette"
)

// Kind identifies a gradient variant.
type Kind string

const (
	KindLinear Kind = "linear"
	KindRadial Kind = "radial"
)

// Params records the random choices behind a generated background.
type Params struct {
	Kind  Kind
	From  color.NRGBA
	To    color.NRGBA
	Angle float64 // degrees, linear only
}

// normEpsilon keeps the linear normalization finite on degenerate fields.
const normEpsilon = 1e-8

// Generate picks a linear or radial gradient uniformly and renders it
// with colors drawn from pal.
func Generate(size image.Point, pal palette.Palette, rng *rand.Rand) (*image.NRGBA, Params) {
	if rng.Intn(2) == 0 {
		p := Params{Kind: KindLinear}
		p.From = pal.Random(rng)
		p.To = pal.Random(rng)
		p.Angle = rng.Float64() * 360
		return Linear(size, p.From, p.To, p.Angle), p
	}
	p := Params{Kind: KindRadial}
	p.From = pal.Random(rng)
	p.To = pal.Random(rng)
	return Radial(size, p.From, p.To), p
}

// LinearField evaluates the normalized linear gradient field for the given
// angle in degrees. The result is row-major, one value per pixel.
func LinearField(size image.Point, angleDeg float64) []float64 {
	w, h := size.X, size.Y
	a := angleDeg * math.Pi / 180
	ca, sa := math.Cos(a), math.Sin(a)

	field := make([]float64, w*h)
	for j := 0; j < h; j++ {
		y := axis(j, h)
		for i := 0; i < w; i++ {
			field[j*w+i] = ca*axis(i, w) + sa*y
		}
	}

	lo, hi := floats.Min(field), floats.Max(field)
	floats.AddConst(-lo, field)
	floats.Scale(1/(hi-lo+normEpsilon), field)
	return field
}

// axis maps pixel index i of n onto [-0.5, 0.5].
func axis(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return -0.5 + float64(i)/float64(n-1)
}

// RadialField evaluates distance-from-center over half the diagonal,
// clamped to [0,1].
func RadialField(size image.Point) []float64 {
	w, h := size.X, size.Y
	cx, cy := float64(w)/2, float64(h)/2
	maxR := math.Hypot(float64(w), float64(h)) / 2

	field := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			t := math.Hypot(float64(i)-cx, float64(j)-cy) / maxR
			field[j*w+i] = math.Min(math.Max(t, 0), 1)
		}
	}
	return field
}

// Linear renders a gradient from c1 to c2 along angleDeg.
func Linear(size image.Point, c1, c2 color.NRGBA, angleDeg float64) *image.NRGBA {
	return Render(size, LinearField(size, angleDeg), c1, c2)
}

// Radial renders a gradient from inner at the center to outer at the
// corners.
func Radial(size image.Point, inner, outer color.NRGBA) *image.NRGBA {
	return Render(size, RadialField(size), inner, outer)
}

// Render colors an opaque image by interpolating c1→c2 with field.
func Render(size image.Point, field []float64, c1, c2 color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for k, t := range field {
		p := img.Pix[k*4 : k*4+4 : k*4+4]
		p[0] = filter.ClampByte(filter.Lerp(float64(c1.R), float64(c2.R), t))
		p[1] = filter.ClampByte(filter.Lerp(float64(c1.G), float64(c2.G), t))
		p[2] = filter.ClampByte(filter.Lerp(float64(c1.B), float64(c2.B), t))
		p[3] = 255
	}
	return img
}
