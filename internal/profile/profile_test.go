package profile

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	p, ok := Get("iphone-13")
	require.True(t, ok)
	require.Equal(t, image.Pt(1170, 2532), p.Size())

	_, ok = Get("nokia-3310")
	require.False(t, ok)
}

func TestRandomIsCatalogEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		p := Random(rng)
		got, ok := Get(p.Name)
		require.True(t, ok)
		require.Equal(t, got, p)
	}
}

func TestAllPortrait(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	for _, p := range all {
		require.Greater(t, p.Height, p.Width, p.Name)
	}
	require.Len(t, Names(), len(all))
}
