// Package pattern implements the transparent overlay layers a wallpaper is
// built from. Each generator draws with colors from the composition
// palette onto a fully transparent canvas of the target size.
package pattern

import (
	"image"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/AnyUserName/wallgen/internal/palette"
)

// Generator produces one pattern layer.
//
// Generate must return an image with bounds (0,0)-(size.X,size.Y) and must
// draw all of its randomness from rng.
type Generator interface {
	Name() string
	Generate(size image.Point, pal palette.Palette, rng *rand.Rand) *image.NRGBA
}

// registry is the fixed set of generators, in a stable order.
var registry = []Generator{
	ScatterCircles{},
	Stripes{},
	Concentric{},
	Triangles{},
	Waves{},
	SoftBlobs{},
	Dots{},
}

// Registry returns a copy of the generator registry.
func Registry() []Generator {
	out := make([]Generator, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, bool) {
	for _, g := range registry {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

// Names lists registered generator names in registry order.
func Names() []string {
	out := make([]string, len(registry))
	for i, g := range registry {
		out[i] = g.Name()
	}
	return out
}

func minDim(size image.Point) float64 {
	return math.Min(float64(size.X), float64(size.Y))
}

// percentOf returns int(pct% of v), never below floor.
func percentOf(v float64, pct float64, floor int) int {
	return max(floor, int(v*pct/100))
}

// toLayer converts the premultiplied gg canvas into a straight-alpha layer.
func toLayer(dc *gg.Context) *image.NRGBA {
	return imaging.Clone(dc.Image())
}
