package background

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/wallgen/internal/palette"
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	peach = color.NRGBA{200, 100, 50, 255}
)

func TestLinear_CenterIsMidpoint(t *testing.T) {
	for _, angle := range []float64{0, 37, 90, 180, 233.5, 359} {
		img := Linear(image.Pt(101, 61), black, peach, angle)
		c := img.NRGBAAt(50, 30)
		require.InDelta(t, 100, int(c.R), 1, "angle %v", angle)
		require.InDelta(t, 50, int(c.G), 1, "angle %v", angle)
		require.InDelta(t, 25, int(c.B), 1, "angle %v", angle)
	}
}

func TestLinearField_Normalized(t *testing.T) {
	field := LinearField(image.Pt(40, 30), 45)
	lo, hi := 1.0, 0.0
	for _, v := range field {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	require.InDelta(t, 0, lo, 1e-6)
	require.InDelta(t, 1, hi, 1e-6)
}

func TestLinear_ZeroAngleRunsLeftToRight(t *testing.T) {
	img := Linear(image.Pt(11, 5), black, peach, 0)
	require.Equal(t, black, img.NRGBAAt(0, 2))
	require.Equal(t, peach, img.NRGBAAt(10, 2))
	// Constant along columns.
	require.Equal(t, img.NRGBAAt(4, 0), img.NRGBAAt(4, 4))
}

func TestLinear_SinglePixel(t *testing.T) {
	img := Linear(image.Pt(1, 1), black, peach, 120)
	require.Equal(t, black, img.NRGBAAt(0, 0))
}

func TestRadial_CenterAndCorner(t *testing.T) {
	img := Radial(image.Pt(100, 100), black, peach)
	require.Equal(t, black, img.NRGBAAt(50, 50))

	corner := img.NRGBAAt(0, 0)
	require.InDelta(t, int(peach.R), int(corner.R), 1)
	require.InDelta(t, int(peach.G), int(corner.G), 1)
	require.InDelta(t, int(peach.B), int(corner.B), 1)
}

func TestRadialField_Clamped(t *testing.T) {
	for _, v := range RadialField(image.Pt(7, 13)) {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	pal := palette.Catalog()[3]
	a, pa := Generate(image.Pt(30, 50), pal, rand.New(rand.NewSource(11)))
	b, pb := Generate(image.Pt(30, 50), pal, rand.New(rand.NewSource(11)))
	require.Equal(t, pa, pb)
	require.Equal(t, a.Pix, b.Pix)
	require.Equal(t, image.Rect(0, 0, 30, 50), a.Bounds())
	require.Contains(t, []Kind{KindLinear, KindRadial}, pa.Kind)
}

func TestGenerate_BothKindsReachable(t *testing.T) {
	pal := palette.Catalog()[0]
	seen := map[Kind]bool{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 32; i++ {
		_, p := Generate(image.Pt(4, 4), pal, rng)
		seen[p.Kind] = true
		if p.Kind == KindLinear {
			require.GreaterOrEqual(t, p.Angle, 0.0)
			require.Less(t, p.Angle, 360.0)
		}
	}
	require.True(t, seen[KindLinear])
	require.True(t, seen[KindRadial])
}
