package palette

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogParses(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 12)
	for i, p := range cat {
		for j, c := range p {
			require.Equal(t, uint8(255), c.A, "palette %d color %d must be opaque", i, j)
		}
	}
	require.Equal(t, []string{"#0f0f1a", "#1b1f3b", "#533a71", "#a88fac", "#ffd6e0"}, cat[0].Hex())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#fca311")
	require.NoError(t, err)
	require.Equal(t, uint8(0xfc), c.R)
	require.Equal(t, uint8(0xa3), c.G)
	require.Equal(t, uint8(0x11), c.B)

	_, err = ParseHex("nope")
	require.Error(t, err)
}

func TestChoose_IsShuffledCatalogEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Choose(rng)

	got := p.Hex()
	sort.Strings(got)

	found := false
	for _, c := range Catalog() {
		want := c.Hex()
		sort.Strings(want)
		if equalStrings(got, want) {
			found = true
			break
		}
	}
	require.True(t, found, "chosen palette %v is not a permutation of a catalog entry", p.Hex())
}

func TestChoose_Deterministic(t *testing.T) {
	a := Choose(rand.New(rand.NewSource(42)))
	b := Choose(rand.New(rand.NewSource(42)))
	require.Equal(t, a, b)
}

func TestChoose_DoesNotMutateCatalog(t *testing.T) {
	before := Catalog()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		Choose(rng)
	}
	require.Equal(t, before, Catalog())
}

func TestLightness(t *testing.T) {
	p := Catalog()[0]
	l := p.Lightness()
	require.Len(t, l, Size)
	// #0f0f1a is near black, #ffd6e0 near white.
	require.Less(t, l[0], l[4])
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
