package postfx

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestApply_FlattensAndKeepsSize(t *testing.T) {
	img := imaging.New(30, 50, color.NRGBA{90, 120, 200, 40})
	out, rec := Apply(img, rand.New(rand.NewSource(1)))

	require.Equal(t, img.Bounds(), out.Bounds())
	for i := 3; i < len(out.Pix); i += 4 {
		require.Equal(t, uint8(255), out.Pix[i])
	}
	require.GreaterOrEqual(t, rec.Contrast, minContrastBoost)
	require.Less(t, rec.Contrast, maxContrastBoost)
	require.GreaterOrEqual(t, rec.Saturation, minSaturateBoost)
	require.Less(t, rec.Saturation, maxSaturateBoost)
}

func TestApply_Deterministic(t *testing.T) {
	img := imaging.New(24, 24, color.NRGBA{10, 200, 90, 255})
	a, ra := Apply(img, rand.New(rand.NewSource(17)))
	b, rb := Apply(img, rand.New(rand.NewSource(17)))
	require.Equal(t, ra, rb)
	require.Equal(t, a.Pix, b.Pix)
}

func TestApply_EffectsAreOptional(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{128, 128, 128, 255})
	rng := rand.New(rand.NewSource(5))
	var grain, noGrain, vignette, noVignette int
	for i := 0; i < 200; i++ {
		_, rec := Apply(img, rng)
		if rec.Grain > 0 {
			grain++
			require.GreaterOrEqual(t, rec.Grain, minGrainAmount)
			require.Less(t, rec.Grain, maxGrainAmount)
		} else {
			noGrain++
		}
		if rec.Vignette > 0 {
			vignette++
			require.GreaterOrEqual(t, rec.Vignette, minVignetteAmount)
			require.Less(t, rec.Vignette, maxVignetteAmount)
		} else {
			noVignette++
		}
	}
	require.Greater(t, grain, noGrain)
	require.Greater(t, vignette, noVignette)
	require.Positive(t, noGrain)
	require.Positive(t, noVignette)
}

func TestVignette_DarkensEdgesMoreThanCenter(t *testing.T) {
	img := imaging.New(101, 101, color.NRGBA{200, 200, 200, 255})
	out := Vignette(img, 0.2)

	center := out.NRGBAAt(50, 50).R
	corner := out.NRGBAAt(0, 0).R
	require.Less(t, corner, center)
	require.LessOrEqual(t, center, uint8(200))
}

func TestVignetteMask_BrightCenter(t *testing.T) {
	mask := VignetteMask(image.Pt(80, 120))
	require.Equal(t, uint8(255), mask.NRGBAAt(40, 60).R)
	require.Less(t, mask.NRGBAAt(0, 0).R, uint8(255))
}

func TestGrain_StaysNearInput(t *testing.T) {
	img := imaging.New(32, 32, color.NRGBA{100, 100, 100, 255})
	out := Grain(img, 0.05, 60, rand.New(rand.NewSource(3)))
	for i := 0; i < len(out.Pix); i += 4 {
		require.InDelta(t, 100, int(out.Pix[i]), 9)
	}
}
