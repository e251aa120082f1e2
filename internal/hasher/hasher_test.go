package hasher

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	full := ContentHash([]byte("wallpaper"), 0)
	require.Len(t, full, 16)
	require.Equal(t, full[:8], ContentHash([]byte("wallpaper"), 8))
	require.NotEqual(t, full, ContentHash([]byte("wallpapers"), 0))
}

func TestPixelHash_IgnoresStride(t *testing.T) {
	big := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			big.SetNRGBA(x, y, color.NRGBA{uint8(x * 20), uint8(y * 20), 7, 255})
		}
	}
	sub := big.SubImage(image.Rect(2, 3, 6, 8)).(*image.NRGBA)

	copied := image.NewNRGBA(image.Rect(2, 3, 6, 8))
	for y := 3; y < 8; y++ {
		for x := 2; x < 6; x++ {
			copied.SetNRGBA(x, y, big.NRGBAAt(x, y))
		}
	}

	require.Equal(t, PixelHash(copied, 0), PixelHash(sub, 0))
	require.NotEqual(t, PixelHash(big, 0), PixelHash(sub, 0))
}
