package compositor

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/wallgen/internal/blend"
	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/pattern"
)

func solid(c color.NRGBA) *image.NRGBA {
	return imaging.New(8, 8, c)
}

func TestApply_OrderMatters(t *testing.T) {
	base := solid(color.NRGBA{100, 100, 100, 255})
	a := solid(color.NRGBA{80, 80, 80, 255})
	b := solid(color.NRGBA{200, 200, 200, 255})

	ab := Apply(Apply(base, a, blend.Subtract, 1), b, blend.Screen, 1)
	ba := Apply(Apply(base, b, blend.Screen, 1), a, blend.Subtract, 1)

	require.Equal(t, uint8(205), ab.Pix[0])
	require.Equal(t, uint8(142), ba.Pix[0])
	require.NotEqual(t, ab.Pix, ba.Pix)
}

func TestApply_KeepsCompositionAlpha(t *testing.T) {
	base := solid(color.NRGBA{100, 150, 200, 200})
	layer := solid(color.NRGBA{255, 0, 0, 10})
	for _, m := range blend.All()[1:] {
		out := Apply(base, layer, m, 0.6)
		for i := 3; i < len(out.Pix); i += 4 {
			require.Equal(t, uint8(200), out.Pix[i], m.String())
		}
	}
}

func TestApply_IgnoresLayerAlphaForBlendModes(t *testing.T) {
	base := solid(color.NRGBA{200, 200, 200, 255})
	// Fully transparent black still multiplies to black.
	layer := solid(color.NRGBA{0, 0, 0, 0})
	out := Apply(base, layer, blend.Multiply, 1)
	require.Equal(t, color.NRGBA{0, 0, 0, 255}, out.NRGBAAt(3, 3))
}

func TestApply_OpacityInterpolates(t *testing.T) {
	base := solid(color.NRGBA{200, 100, 50, 255})
	layer := solid(color.NRGBA{255, 255, 255, 255})

	require.Equal(t, base.Pix, Apply(base, layer, blend.Multiply, 0).Pix)

	half := Apply(base, layer, blend.Add, 0.5).NRGBAAt(0, 0)
	require.Equal(t, color.NRGBA{228, 178, 153, 255}, half)
}

func TestApply_Normal(t *testing.T) {
	base := solid(color.NRGBA{0, 0, 0, 255})
	layer := solid(color.NRGBA{255, 255, 255, 255})

	out := Apply(base, layer, blend.Normal, 0.5).NRGBAAt(0, 0)
	require.InDelta(t, 128, int(out.R), 1)
	require.Equal(t, uint8(255), out.A)

	clear := solid(color.NRGBA{255, 0, 0, 0})
	require.Equal(t, base.Pix, Apply(base, clear, blend.Normal, 0.85).Pix)
}

func TestPlan(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	counts := map[int]bool{}
	for i := 0; i < 100; i++ {
		plan := Plan(pattern.Registry(), rng)
		require.GreaterOrEqual(t, len(plan), MinLayers)
		require.LessOrEqual(t, len(plan), MaxLayers)
		counts[len(plan)] = true

		seen := map[string]bool{}
		for _, g := range plan {
			require.False(t, seen[g.Name()], "generator repeated in plan")
			seen[g.Name()] = true
		}
	}
	require.Len(t, counts, 3)
}

func TestPlan_DoesNotReorderInput(t *testing.T) {
	reg := pattern.Registry()
	Plan(reg, rand.New(rand.NewSource(1)))
	require.Equal(t, pattern.Names()[0], reg[0].Name())
}

func TestRun(t *testing.T) {
	base := imaging.New(40, 60, color.NRGBA{30, 60, 90, 255})
	pal := palette.Catalog()[2]

	out, steps := New(nil).Run(base, pal, rand.New(rand.NewSource(4)))
	require.Equal(t, base.Bounds(), out.Bounds())
	require.GreaterOrEqual(t, len(steps), MinLayers)
	require.LessOrEqual(t, len(steps), MaxLayers)
	for _, s := range steps {
		_, ok := pattern.Lookup(s.Generator)
		require.True(t, ok)
		require.GreaterOrEqual(t, s.Opacity, MinOpacity)
		require.Less(t, s.Opacity, MaxOpacity)
		if s.Soften != 0 {
			require.GreaterOrEqual(t, s.Soften, minSoften)
			require.Less(t, s.Soften, maxSoften)
		}
	}
	require.Equal(t, uint8(30), base.Pix[0], "input must not change")

	again, stepsAgain := New(nil).Run(base, pal, rand.New(rand.NewSource(4)))
	require.Equal(t, steps, stepsAgain)
	require.Equal(t, out.Pix, again.Pix)
}

func TestRun_SingleGenerator(t *testing.T) {
	base := imaging.New(20, 20, color.NRGBA{0, 0, 0, 255})
	only, _ := pattern.Lookup("dots")
	_, steps := New([]pattern.Generator{only}).Run(base, palette.Catalog()[0], rand.New(rand.NewSource(2)))
	require.Len(t, steps, 1)
	require.Equal(t, "dots", steps[0].Generator)
}
