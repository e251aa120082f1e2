// Package compositor blends a random selection of pattern layers onto the
// wallpaper background.
package compositor

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/wallgen/internal/blend"
	"github.com/AnyUserName/wallgen/internal/filter"
	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/pattern"
	"github.com/AnyUserName/wallgen/internal/randutil"
)

const (
	MinLayers = 2
	MaxLayers = 4

	MinOpacity = 0.25
	MaxOpacity = 0.85

	// softenChance is the probability of blurring the composition after a
	// layer, by a sigma in [minSoften, maxSoften).
	softenChance = 0.5
	minSoften    = 0.2
	maxSoften    = 0.8
)

// Step records how one layer was applied.
type Step struct {
	Generator string     `json:"generator"`
	Mode      blend.Mode `json:"mode"`
	Opacity   float64    `json:"opacity"`
	Soften    float64    `json:"soften,omitempty"` // blur sigma applied afterwards, 0 if none
}

// Compositor owns the generator registry layers are drawn from.
type Compositor struct {
	generators []pattern.Generator
}

// New creates a compositor over generators. Passing nil uses the full
// pattern registry.
func New(generators []pattern.Generator) *Compositor {
	if generators == nil {
		generators = pattern.Registry()
	}
	return &Compositor{generators: generators}
}

// Plan shuffles generators and keeps the first 2–4 of them. The returned
// order is the order the layers are applied in.
func Plan(generators []pattern.Generator, rng *rand.Rand) []pattern.Generator {
	shuffled := make([]pattern.Generator, len(generators))
	copy(shuffled, generators)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	n := min(randutil.Between(rng, MinLayers, MaxLayers), len(shuffled))
	return shuffled[:n]
}

// Run composites the planned layers onto comp in order and returns the
// result with one Step per layer. comp itself is not modified.
func (c *Compositor) Run(comp *image.NRGBA, pal palette.Palette, rng *rand.Rand) (*image.NRGBA, []Step) {
	size := comp.Rect.Size()
	plan := Plan(c.generators, rng)
	steps := make([]Step, 0, len(plan))

	for _, g := range plan {
		layer := g.Generate(size, pal, randutil.Derive(rng))
		step := Step{
			Generator: g.Name(),
			Mode:      blend.Random(rng),
			Opacity:   randutil.Uniform(rng, MinOpacity, MaxOpacity),
		}
		comp = Apply(comp, layer, step.Mode, step.Opacity)

		if randutil.Chance(rng, softenChance) {
			step.Soften = randutil.Uniform(rng, minSoften, maxSoften)
			comp = imaging.Blur(comp, step.Soften)
		}
		steps = append(steps, step)
	}
	return comp, steps
}

// Apply blends layer onto comp and returns a new image.
//
// Normal scales the layer alpha by opacity and composites it over comp.
// Every other mode combines the color channels of both images with the
// mode function (alpha ignored), moves the result from comp toward it by
// opacity, and keeps comp's alpha.
func Apply(comp, layer *image.NRGBA, mode blend.Mode, opacity float64) *image.NRGBA {
	fn := mode.Func()
	if fn == nil {
		return imaging.Overlay(comp, layer, image.Pt(0, 0), opacity)
	}

	out := image.NewNRGBA(comp.Rect)
	for i := 0; i < len(out.Pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			base := comp.Pix[i+ch]
			mixed := fn(base, layer.Pix[i+ch])
			out.Pix[i+ch] = filter.ClampByte(filter.Lerp(float64(base), float64(mixed), opacity))
		}
		out.Pix[i+3] = comp.Pix[i+3]
	}
	return out
}
